// SPDX-License-Identifier: MIT
// Package concrete_test verifies Hull and MinkowskiSum.

package concrete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
)

func TestHull_CubeWithInnerPoints(t *testing.T) {
	points := cube(t).Points()
	points = append(points, []float64{0, 0, 0}, []float64{1, 1, 0}, []float64{0, 1, 1})

	h, err := concrete.Hull(points)
	require.NoError(t, err)
	assert.Equal(t, CountsCube, h.Abstract().Counts())
	assert.Equal(t, cube(t).Points(), h.Points(), "vertices keep input order")
	requireValid(t, h)
}

func TestHull_Octahedron(t *testing.T) {
	points := [][]float64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	h, err := concrete.Hull(points)
	require.NoError(t, err)
	assert.Equal(t, CountsOctahedron, h.Abstract().Counts())
	requireValid(t, h)

	seq, err := concrete.Hull(points, concrete.WithWorkers(1))
	require.NoError(t, err)
	assert.True(t, seq.Abstract().Equal(h.Abstract()), "result does not depend on worker count")
}

func TestHull_LowerDimensional(t *testing.T) {
	// A square in the plane z = 2 plus repeated points.
	points := [][]float64{{0, 0, 2}, {1, 0, 2}, {1, 1, 2}, {0, 1, 2}, {1, 1, 2}, {0.5, 0.5, 2}}
	h, err := concrete.Hull(points)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Rank())
	assert.Equal(t, 3, h.Dim())
	assert.Equal(t, CountsSquare, h.Abstract().Counts())
	requireValid(t, h)

	seg, err := concrete.Hull([][]float64{{0, 0}, {2, 2}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, seg.Rank())
	assert.Equal(t, [][]float64{{0, 0}, {2, 2}}, seg.Points())

	pt, err := concrete.Hull([][]float64{{3, 4}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 0, pt.Rank())
	assert.Equal(t, [][]float64{{3, 4}}, pt.Points())
}

func TestHull_Errors(t *testing.T) {
	_, err := concrete.Hull(nil)
	assert.ErrorIs(t, err, concrete.ErrIncompleteMapping)
	_, err = concrete.Hull([][]float64{{0, 0}, nil})
	assert.ErrorIs(t, err, concrete.ErrIncompleteMapping)
	_, err = concrete.Hull([][]float64{{0, 0}, {1}})
	assert.ErrorIs(t, err, concrete.ErrDimensionMismatch)
}

func TestMinkowskiSum_OrthogonalSegmentsMakeACube(t *testing.T) {
	sq, err := concrete.MinkowskiSum(segment(t, 3, 0), segment(t, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, CountsSquare, sq.Abstract().Counts())

	c, err := concrete.MinkowskiSum(sq, segment(t, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, CountsCube, c.Abstract().Counts())
	requireAllInDelta(t, 2, c.EdgeLengths())
	requireValid(t, c)
}

func TestMinkowskiSum_SquarePlusDiamondIsOctagon(t *testing.T) {
	diamond, err := concrete.Tegum(segment(t, 1, 0), segment(t, 1, 0))
	require.NoError(t, err)
	oct, err := concrete.MinkowskiSum(square(t), diamond)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 8, 8, 1}, oct.Abstract().Counts())
	requireValid(t, oct)
}

func TestMinkowskiSum_Errors(t *testing.T) {
	_, err := concrete.MinkowskiSum(square(t), cube(t))
	assert.ErrorIs(t, err, concrete.ErrDimensionMismatch)

	flatTriangle, err := concrete.WithCoordinates(triangle(t).Abstract(), [][]float64{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)
	origin, err := concrete.WithCoordinates(core.Point(), [][]float64{{0, 0}})
	require.NoError(t, err)
	_, err = concrete.MinkowskiSum(flatTriangle, origin)
	assert.ErrorIs(t, err, concrete.ErrDegenerateSum)

	_, err = concrete.MinkowskiSum(nil, origin)
	assert.ErrorIs(t, err, concrete.ErrNilPolytope)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { concrete.WithTolerance(-1) })
	assert.Panics(t, func() { concrete.WithWorkers(0) })
}
