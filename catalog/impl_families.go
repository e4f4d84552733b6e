// SPDX-License-Identifier: MIT
// Package: polytope/catalog
//
// impl_families.go — abstract polygons, simplices, hypercubes and
// orthoplexes.
//
// Contract:
//   • Polygon(n): vertex i joins vertex i+1 mod n through edge i.
//   • Simplex(n) = Pyramid applied n+1 times to the nullitope.
//   • Hypercube(n) = Prism applied n times to the point.
//   • Orthoplex(n) = Bipyramid applied n times to the point.
//   • Sizes below the minimum → ErrTooFewVertices.
//
// Complexity:
//   • Polygon: O(n). The iterated families cost what the products cost,
//     with O(3^n) elements for hypercubes and orthoplexes and O(2^n) for
//     simplices.

package catalog

import (
	"github.com/katalvlaran/polytope/construct"
	"github.com/katalvlaran/polytope/core"
)

// Point returns the rank 0 polytope.
func Point() *core.Polytope { return core.Point() }

// Segment returns the rank 1 polytope.
func Segment() *core.Polytope { return core.Segment() }

// Polygon returns the n-gon, n >= MinPolygonVertices.
func Polygon(n int) (*core.Polytope, error) {
	if err := validateMin(MethodPolygon, n, MinPolygonVertices); err != nil {
		return nil, err
	}
	edges := make([][]int, n)
	face := make([]int, n)
	for i := 0; i < n; i++ {
		edges[i] = []int{i, (i + 1) % n}
		face[i] = i
	}
	p, err := core.New(n, edges, [][]int{face})
	if err != nil {
		return nil, catalogErrorf(MethodPolygon, "%w", err)
	}

	return p, nil
}

// Simplex returns the n-simplex, n >= MinSimplexRank. Vertex n is the apex
// of the last pyramid.
func Simplex(n int) (*core.Polytope, error) {
	if err := validateMin(MethodSimplex, n, MinSimplexRank); err != nil {
		return nil, err
	}

	return iterate(MethodSimplex, core.Nullitope(), n+1, construct.Pyramid)
}

// Hypercube returns the n-cube, n >= MinCubeRank.
func Hypercube(n int) (*core.Polytope, error) {
	if err := validateMin(MethodHypercube, n, MinCubeRank); err != nil {
		return nil, err
	}

	return iterate(MethodHypercube, core.Point(), n, construct.Prism)
}

// Orthoplex returns the n-orthoplex (cross-polytope), n >= MinCubeRank.
// Vertices 2k and 2k+1 are the two apexes added at step k.
func Orthoplex(n int) (*core.Polytope, error) {
	if err := validateMin(MethodOrthoplex, n, MinCubeRank); err != nil {
		return nil, err
	}

	return iterate(MethodOrthoplex, core.Point(), n, construct.Bipyramid)
}

// iterate applies step to p k times.
func iterate(method string, p *core.Polytope, k int, step func(*core.Polytope) (*core.Polytope, error)) (*core.Polytope, error) {
	var err error
	for i := 0; i < k; i++ {
		if p, err = step(p); err != nil {
			return nil, catalogErrorf(method, "step %d: %w", i+1, err)
		}
	}

	return p, nil
}
