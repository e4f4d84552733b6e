package flags_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/core"
)

// Flag counts of the fixtures.
const (
	FlagsTriangle    = 6
	FlagsTetrahedron = 24
	FlagsCube        = 48
	FlagsHemicube    = 24

	NWorkers = 16
)

func polygon(t testing.TB, n int) *core.Polytope {
	t.Helper()

	edges := make([][]int, n)
	face := make([]int, n)
	for i := 0; i < n; i++ {
		edges[i] = []int{i, (i + 1) % n}
		face[i] = i
	}
	p, err := core.New(n, edges, [][]int{face})
	require.NoError(t, err)

	return p
}

func tetrahedron(t testing.TB) *core.Polytope {
	t.Helper()

	p, err := core.FromFaces(4, [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}})
	require.NoError(t, err)

	return p
}

func cube(t testing.TB) *core.Polytope {
	t.Helper()

	p, err := core.FromFaces(8, [][]int{
		{0, 2, 6, 4}, {1, 3, 7, 5},
		{0, 1, 5, 4}, {2, 3, 7, 6},
		{0, 1, 3, 2}, {4, 5, 7, 6},
	})
	require.NoError(t, err)

	return p
}

// hemicube is the tetrahedron's edges with its three Petrie polygons as faces.
func hemicube(t testing.TB) *core.Polytope {
	t.Helper()

	p, err := core.FromFaces(4, [][]int{{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}})
	require.NoError(t, err)

	return p
}

// twoTriangles is a compound of two triangles sharing their extrema.
func twoTriangles(t testing.TB) *core.Polytope {
	t.Helper()

	p, err := core.Assemble([][][]int{
		{{}},
		{{0}, {0}, {0}, {0}, {0}, {0}},
		{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}},
		{{0, 1, 2, 3, 4, 5}},
	}, core.AsCompound())
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	return p
}
