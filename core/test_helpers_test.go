// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and assertion helpers for core tests.
//
// Purpose:
//   - Provide small, deterministic polytopes (polygons, tetrahedron, cube).
//   - Check structural invariants shared by many tests (incidence symmetry).
//   - Keep *testing.T out of goroutines: workers report through channels.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/core"
)

// Common sizes used across core tests.
const (
	NReaders      = 32
	NBenchPolygon = 2000
)

// Expected element counts, index 0 = rank -1.
var (
	CountsPoint       = []int{1, 1}
	CountsSegment     = []int{1, 2, 1}
	CountsTriangle    = []int{1, 3, 3, 1}
	CountsSquare      = []int{1, 4, 4, 1}
	CountsTetrahedron = []int{1, 4, 6, 4, 1}
	CountsCube        = []int{1, 8, 12, 6, 1}
	CountsOctahedron  = []int{1, 6, 12, 8, 1}
)

// CubeFaces lists the faces of the cube on vertices v = x + 2y + 4z.
var CubeFaces = [][]int{
	{0, 2, 6, 4}, // x = 0
	{1, 3, 7, 5}, // x = 1
	{0, 1, 5, 4}, // y = 0
	{2, 3, 7, 6}, // y = 1
	{0, 1, 3, 2}, // z = 0
	{4, 5, 7, 6}, // z = 1
}

// MustPolygon RETURNS the n-gon with vertices 0..n-1 and edge i = {i, i+1 mod n}.
//
// Implementation:
//   - Stage 1: Build the edge list around the cycle.
//   - Stage 2: Call core.New with one face holding every edge.
//
// Errors:
//   - Fatal test failure if core.New rejects the input.
func MustPolygon(t testing.TB, n int) *core.Polytope {
	t.Helper()

	edges := make([][]int, n)
	face := make([]int, n)
	for i := 0; i < n; i++ {
		edges[i] = []int{i, (i + 1) % n}
		face[i] = i
	}
	p, err := core.New(n, edges, [][]int{face})
	require.NoError(t, err, "core.New(polygon %d)", n)

	return p
}

// MustTetrahedron RETURNS the tetrahedron built from its four triangles.
func MustTetrahedron(t testing.TB) *core.Polytope {
	t.Helper()

	p, err := core.FromFaces(4, [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}})
	require.NoError(t, err, "core.FromFaces(tetrahedron)")

	return p
}

// MustCube RETURNS the cube built from CubeFaces.
func MustCube(t testing.TB) *core.Polytope {
	t.Helper()

	p, err := core.FromFaces(8, CubeFaces)
	require.NoError(t, err, "core.FromFaces(cube)")

	return p
}

// MustDisjointTriangles RETURNS two triangles sharing their extrema,
// assembled without the axiom check. compound selects core.AsCompound.
func MustDisjointTriangles(t testing.TB, compound bool) *core.Polytope {
	t.Helper()

	vertices := make([][]int, 6)
	for i := range vertices {
		vertices[i] = []int{0}
	}
	edges := [][]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	subs := [][][]int{{{}}, vertices, edges, {{0, 1, 2, 3, 4, 5}}}

	var opts []core.AssembleOption
	if compound {
		opts = append(opts, core.AsCompound())
	}
	p, err := core.Assemble(subs, opts...)
	require.NoError(t, err, "core.Assemble(two triangles)")

	return p
}

// MustIncidenceSymmetric FAILS the test unless every subelement relation
// is mirrored by the matching superelement relation, and vice versa.
//
// Complexity:
//   - Time O(I log d), Space O(1).
func MustIncidenceSymmetric(t testing.TB, p *core.Polytope) {
	t.Helper()

	for r := -1; r <= p.Rank(); r++ {
		list, err := p.Elements(r)
		require.NoError(t, err)
		for i, e := range list {
			for _, s := range e.Subelements() {
				sub, err := p.Element(r-1, s)
				require.NoError(t, err)
				require.True(t, sub.HasSuper(i), "(%d:%d) lists sub %d, which does not list it back", r, i, s)
			}
			for _, s := range e.Superelements() {
				sup, err := p.Element(r+1, s)
				require.NoError(t, err)
				require.True(t, sup.HasSub(i), "(%d:%d) lists super %d, which does not list it back", r, i, s)
			}
		}
	}
}
