// SPDX-License-Identifier: MIT
// Package concrete_test contains fixtures shared by the concrete tests.

package concrete_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
)

// Tol is the comparison tolerance for coordinates.
const Tol = 1e-9

var (
	CountsSquare      = []int{1, 4, 4, 1}
	CountsCube        = []int{1, 8, 12, 6, 1}
	CountsOctahedron  = []int{1, 6, 12, 8, 1}
	CountsTriangle    = []int{1, 3, 3, 1}
	CountsTriPrism    = []int{1, 6, 9, 5, 1}
	CountsTetrahedron = []int{1, 4, 6, 4, 1}
)

// square returns the square with vertices (±1, ±1) in cyclic order.
func square(t testing.TB) *concrete.Polytope {
	t.Helper()

	p, err := core.New(4, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	c, err := concrete.WithCoordinates(p, [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}})
	require.NoError(t, err)

	return c
}

// triangle returns the equilateral triangle on the unit circle.
func triangle(t testing.TB) *concrete.Polytope {
	t.Helper()

	p, err := core.New(3, [][]int{{0, 1}, {1, 2}, {2, 0}}, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	coords := make([][]float64, 3)
	for i := range coords {
		a := 2 * math.Pi * float64(i) / 3
		coords[i] = []float64{math.Cos(a), math.Sin(a)}
	}
	c, err := concrete.WithCoordinates(p, coords)
	require.NoError(t, err)

	return c
}

// segment returns the segment from -axis to +axis in dimension dim.
func segment(t testing.TB, dim, axis int) *concrete.Polytope {
	t.Helper()

	lo, hi := make([]float64, dim), make([]float64, dim)
	lo[axis], hi[axis] = -1, 1
	c, err := concrete.WithCoordinates(core.Segment(), [][]float64{lo, hi})
	require.NoError(t, err)

	return c
}

// cube returns the cube [-1,1]³ as the prism over the square.
func cube(t testing.TB) *concrete.Polytope {
	t.Helper()

	c, err := concrete.Prism(square(t), 2)
	require.NoError(t, err)

	return c
}

// requireValid fails unless p satisfies the polytope axioms.
func requireValid(t testing.TB, p *concrete.Polytope) {
	t.Helper()
	require.NoError(t, p.Abstract().Validate())
}

// requireAllInDelta fails unless every value of got is within Tol of want.
func requireAllInDelta(t testing.TB, want float64, got []float64) {
	t.Helper()
	for i, x := range got {
		require.InDelta(t, want, x, Tol, "entry %d", i)
	}
}
