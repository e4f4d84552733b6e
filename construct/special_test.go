package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/construct"
	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/flags"
)

func TestDual_Tetrahedron(t *testing.T) {
	d, err := construct.Dual(tetrahedron(t))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 6, 4, 1}, d.Counts())
	requireIsomorphic(t, d, tetrahedron(t))
}

func TestDual_Involution(t *testing.T) {
	for name, p := range fixtures(t) {
		t.Run(name, func(t *testing.T) {
			d, err := construct.Dual(p)
			require.NoError(t, err)
			dd, err := construct.Dual(d)
			require.NoError(t, err)
			assert.True(t, dd.Equal(p))
		})
	}
}

func TestAntiprism_Small(t *testing.T) {
	seg, err := construct.Antiprism(core.Point())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, seg.Counts())

	sq, err := construct.Antiprism(core.Segment())
	require.NoError(t, err)
	requireIsomorphic(t, sq, polygon(t, 4))

	oct, err := construct.Antiprism(polygon(t, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 12, 8, 1}, oct.Counts())
	requireIsomorphic(t, oct, core.Dual(cube(t)))
}

func TestAntiprism_Bases(t *testing.T) {
	pent := polygon(t, 5)
	anti, err := construct.Antiprism(pent)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 20, 12, 1}, anti.Counts())

	// Vertices 0..4 carry the base; 5..9 the dual base.
	for v := 0; v < 10; v++ {
		vf, err := anti.VertexFigure(v)
		require.NoError(t, err)
		requireIsomorphic(t, vf, polygon(t, 4))
	}
}

func TestAntiprism_DiffersFromBipyramid(t *testing.T) {
	pent := polygon(t, 5)
	anti, err := construct.Antiprism(pent)
	require.NoError(t, err)
	bip, err := construct.Bipyramid(pent)
	require.NoError(t, err)
	composed, err := construct.Prism(core.Dual(pent))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 7, 15, 10, 1}, bip.Counts())
	requireIsomorphic(t, bip, core.Dual(composed))
	assert.NotEqual(t, bip.Counts(), anti.Counts())
}

func TestVertexFigure_IsNotDualized(t *testing.T) {
	pyr, err := construct.Pyramid(cube(t))
	require.NoError(t, err)
	apex := pyr.ElementCount(0) - 1

	vf, err := pyr.VertexFigure(apex)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 12, 6, 1}, vf.Counts(), "the figure at the apex is the base")
	requireIsomorphic(t, vf, cube(t))
}

func TestCompound(t *testing.T) {
	c, err := construct.Compound(polygon(t, 3), polygon(t, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 7, 1}, c.Counts())
	assert.True(t, c.IsCompound())
	assert.NoError(t, c.Validate())

	connected, err := flags.IsConnected(c)
	require.NoError(t, err)
	assert.False(t, connected)

	cc, err := construct.Compound(cube(t), cube(t))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 16, 24, 12, 1}, cc.Counts())

	// q's elements follow p's.
	subs, err := cc.Subelements(1, 12)
	require.NoError(t, err)
	first, err := cube(t).Subelements(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{first[0] + 8, first[1] + 8}, subs)
}

func TestCompound_RankMismatch(t *testing.T) {
	_, err := construct.Compound(polygon(t, 3), tetrahedron(t))
	assert.ErrorIs(t, err, construct.ErrRankMismatch)

	_, err = construct.Compound(core.Segment(), core.Segment())
	assert.ErrorIs(t, err, construct.ErrRankMismatch)
}

func TestCompound_MarkPropagation(t *testing.T) {
	c, err := construct.Compound(polygon(t, 3), polygon(t, 3))
	require.NoError(t, err)

	d, err := construct.Dual(c)
	require.NoError(t, err)
	assert.True(t, d.IsCompound())

	pri, err := construct.Prism(c)
	require.NoError(t, err)
	assert.True(t, pri.IsCompound())
	assert.NoError(t, pri.Validate())

	pyr, err := construct.Pyramid(c)
	require.NoError(t, err)
	assert.False(t, pyr.IsCompound())
	assert.NoError(t, pyr.Validate(), "the apex connects both parts")

	bip, err := construct.Bipyramid(c)
	require.NoError(t, err)
	assert.False(t, bip.IsCompound())
	assert.NoError(t, bip.Validate())

	anti, err := construct.Antiprism(c)
	require.NoError(t, err)
	assert.False(t, anti.IsCompound())
	assert.NoError(t, anti.Validate())

	same, err := construct.Tegum(c, core.Point())
	require.NoError(t, err)
	assert.True(t, same.IsCompound())
}

func TestPetrieDual_Cube(t *testing.T) {
	pc, err := construct.PetrieDual(cube(t))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 12, 4, 1}, pc.Counts())

	// Each Petrie polygon of the cube is a skew hexagon.
	for f := 0; f < 4; f++ {
		face, err := pc.Facet(f)
		require.NoError(t, err)
		requireIsomorphic(t, face, polygon(t, 6))
	}

	back, err := construct.PetrieDual(pc)
	require.NoError(t, err)
	requireIsomorphic(t, back, cube(t))
}

func TestPetrieDual_TetrahedronIsHemicube(t *testing.T) {
	hemi, err := construct.PetrieDual(tetrahedron(t))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 6, 3, 1}, hemi.Counts())

	orientable, err := flags.IsOrientable(hemi)
	require.NoError(t, err)
	assert.False(t, orientable)
}

func TestPetrieDual_Undefined(t *testing.T) {
	_, err := construct.PetrieDual(polygon(t, 4))
	assert.ErrorIs(t, err, construct.ErrPetrieUndefined)

	_, err = construct.PetrieDual(core.Point())
	assert.ErrorIs(t, err, construct.ErrPetrieUndefined)

	_, err = construct.PetrieDual(dihedron(t))
	assert.ErrorIs(t, err, construct.ErrPetrieUndefined)
	assert.ErrorIs(t, err, core.ErrAxiomViolation, "the axiom failure is kept")
}

func TestFacades(t *testing.T) {
	c := cube(t)

	vf, err := construct.VertexFigure(c, 0)
	require.NoError(t, err)
	requireIsomorphic(t, vf, polygon(t, 3))

	_, err = construct.VertexFigure(c, 9)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, err = construct.Section(c, 0, 1, 2, 0)
	assert.ErrorIs(t, err, core.ErrNotIncident)

	s, err := construct.Section(c, -1, 0, 2, 0)
	require.NoError(t, err)
	requireIsomorphic(t, s, polygon(t, 4))
}
