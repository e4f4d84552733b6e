package flags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/flags"
)

func TestChange_Triangle(t *testing.T) {
	p := polygon(t, 3)
	base := flags.Flag{0, 0, 0, 0}

	g, err := flags.Change(p, base, 0)
	require.NoError(t, err)
	assert.Equal(t, flags.Flag{0, 1, 0, 0}, g)

	g, err = flags.Change(p, base, 1)
	require.NoError(t, err)
	assert.Equal(t, flags.Flag{0, 0, 2, 0}, g)

	assert.Equal(t, flags.Flag{0, 0, 0, 0}, base, "input flag untouched")
}

func TestChange_Errors(t *testing.T) {
	p := polygon(t, 3)

	_, err := flags.Change(p, flags.Flag{0, 0, 0, 0}, 2)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	_, err = flags.Change(p, flags.Flag{0, 0, 0}, 0)
	assert.ErrorIs(t, err, flags.ErrInvalidChain)

	_, err = flags.Change(nil, nil, 0)
	assert.ErrorIs(t, err, flags.ErrPolytopeNil)

	// Edge 2 has a single vertex: no partner for vertex 2 along it.
	broken, err := core.Assemble([][][]int{
		{{}},
		{{0}, {0}, {0}},
		{{0, 1}, {1, 2}, {2}},
		{{0, 1, 2}},
	})
	require.NoError(t, err)
	_, err = flags.Change(broken, flags.Flag{0, 2, 2, 0}, 0)
	assert.ErrorIs(t, err, flags.ErrInvalidChain)
}

func TestChange_Involution(t *testing.T) {
	p := cube(t)
	require.NoError(t, flags.Walk(p, func(f flags.Flag) error {
		for i := 0; i < p.Rank(); i++ {
			g, err := flags.Change(p, f, i)
			if err != nil {
				return err
			}
			h, err := flags.Change(p, g, i)
			if err != nil {
				return err
			}
			assert.True(t, h.Equal(f))
			assert.NotEqual(t, f.At(i), g.At(i))
		}
		return nil
	}))
}

func TestIsOrientable(t *testing.T) {
	for name, tc := range map[string]struct {
		p    *core.Polytope
		want bool
	}{
		"point":       {core.Point(), true},
		"segment":     {core.Segment(), true},
		"heptagon":    {polygon(t, 7), true},
		"tetrahedron": {tetrahedron(t), true},
		"cube":        {cube(t), true},
		"hemicube":    {hemicube(t), false},
		"compound":    {twoTriangles(t), true},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := flags.IsOrientable(tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := flags.IsOrientable(nil)
	assert.ErrorIs(t, err, flags.ErrPolytopeNil)
}

func TestIsConnected(t *testing.T) {
	ok, err := flags.IsConnected(cube(t))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = flags.IsConnected(twoTriangles(t))
	require.NoError(t, err)
	assert.False(t, ok, "compound components are separate flag orbits")

	ok, err = flags.IsConnected(core.Point())
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = flags.IsConnected(nil)
	assert.ErrorIs(t, err, flags.ErrPolytopeNil)
}

func TestOrbits(t *testing.T) {
	// Petrie polygons of the cube: four hexagons, twelve flags each.
	orbits, err := flags.Orbits(cube(t), []int{0, 2}, []int{1})
	require.NoError(t, err)
	require.Len(t, orbits, 4)
	for _, o := range orbits {
		assert.Len(t, o, 12)
	}

	// Faces of the cube: orbits under <r0, r1>.
	orbits, err = flags.Orbits(cube(t), []int{0}, []int{1})
	require.NoError(t, err)
	require.Len(t, orbits, 6)
	for _, o := range orbits {
		face := o[0].At(2)
		for _, f := range o {
			assert.Equal(t, face, f.At(2))
		}
	}

	// No generators: every flag alone.
	orbits, err = flags.Orbits(polygon(t, 3))
	require.NoError(t, err)
	assert.Len(t, orbits, FlagsTriangle)

	_, err = flags.Orbits(polygon(t, 3), []int{5})
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}
