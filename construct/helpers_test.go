package construct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/flags"
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

// dihedron is {3,2}: two triangles glued along their whole boundary.
// Its single Petrie polygon runs over every edge twice.
func dihedron(t testing.TB) *core.Polytope {
	t.Helper()

	p, err := core.New(3,
		[][]int{{0, 1}, {1, 2}, {2, 0}},
		[][]int{{0, 1, 2}, {0, 1, 2}},
		[][]int{{0, 1}},
	)
	require.NoError(t, err)

	return p
}

// fixtures returns valid polytopes of ranks -1..3.
func fixtures(t testing.TB) map[string]*core.Polytope {
	t.Helper()

	return map[string]*core.Polytope{
		"nullitope":   core.Nullitope(),
		"point":       core.Point(),
		"segment":     core.Segment(),
		"digon":       polygon(t, 2),
		"triangle":    polygon(t, 3),
		"pentagon":    polygon(t, 5),
		"tetrahedron": tetrahedron(t),
		"cube":        cube(t),
		"dihedron":    dihedron(t),
	}
}

func requireIsomorphic(t testing.TB, p, q *core.Polytope) {
	t.Helper()

	ok, err := flags.Isomorphic(p, q)
	require.NoError(t, err)
	require.True(t, ok, "counts %v and %v", p.Counts(), q.Counts())
}
