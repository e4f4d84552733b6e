// SPDX-License-Identifier: MIT
// Package: polytope/concrete
//
// hull.go — face lattice of the convex hull of a finite point set, and the
// Minkowski sum built on it.
//
// Algorithm (k = affine dimension of the points):
//  1. Drop repeated points and express the rest in an affine basis of
//     their span (k local coordinates each).
//  2. Facets: every k-subset of affinely independent points spans a
//     hyperplane; it supports a facet when all points lie on one side.
//     The facet is the set of points on the hyperplane. Subsets are
//     split across goroutines by their first point.
//  3. Faces: close the facet sets under pairwise intersection. Singletons
//     are the vertices; every face is then reduced to its vertices and
//     ranked by height in the inclusion order.
//  4. Assemble the lattice: vertices in input order, faces of each rank
//     sorted by vertex set.
//
// Complexity: O(C(m, k)·m·k²) for the facet search, O(F²·v) for the
// closure. Intended for the small inputs of polytope constructions.

package concrete

import (
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/matrix"
)

// Hull returns the convex hull of points as a concrete polytope whose rank
// is the affine dimension of the points.
//
// Errors:
//   - ErrIncompleteMapping for an empty point set or a nil point.
//   - ErrDimensionMismatch for points of different lengths.
func Hull(points [][]float64, opts ...Option) (*Polytope, error) {
	o := gatherOptions(opts...)
	if len(points) == 0 {
		return nil, concreteErrorf(MethodHull, "no points: %w", ErrIncompleteMapping)
	}
	for i, pt := range points {
		if pt == nil {
			return nil, concreteErrorf(MethodHull, "point %d: %w", i, ErrIncompleteMapping)
		}
		if len(pt) != len(points[0]) {
			return nil, concreteErrorf(MethodHull, "point %d: %w", i, ErrDimensionMismatch)
		}
	}

	pts := dedupe(points, tolerance(o.eps, points))
	basis, err := affineBasis(pts, o.eps)
	if err != nil {
		return nil, concreteErrorf(MethodHull, "%w", err)
	}
	k := len(basis)
	if k == 0 {
		return fromOwned(core.Point(), [][]float64{clone(pts[0])}), nil
	}

	local, err := localCoordinates(pts, basis, o.eps)
	if err != nil {
		return nil, concreteErrorf(MethodHull, "%w", err)
	}
	facets, err := findFacets(local, k, o)
	if err != nil {
		return nil, concreteErrorf(MethodHull, "%w", err)
	}
	abs, vertices, err := assembleLattice(closeFaces(facets), k)
	if err != nil {
		return nil, concreteErrorf(MethodHull, "%w", err)
	}
	coords := make([][]float64, len(vertices))
	for i, v := range vertices {
		coords[i] = clone(pts[v])
	}

	return fromOwned(abs, coords), nil
}

// MinkowskiSum returns the hull of all sums a_i + b_j.
//
// Errors:
//   - ErrDimensionMismatch for operands of different Dim.
//   - ErrDegenerateSum when the sums span fewer than max(rank a, rank b)
//     dimensions.
func MinkowskiSum(a, b *Polytope, opts ...Option) (*Polytope, error) {
	if a == nil || b == nil {
		return nil, concreteErrorf(MethodMinkowskiSum, "%w", ErrNilPolytope)
	}
	if a.dim != b.dim {
		return nil, concreteErrorf(MethodMinkowskiSum, "dimensions %d and %d: %w", a.dim, b.dim, ErrDimensionMismatch)
	}
	if len(a.coords) == 0 || len(b.coords) == 0 {
		return nil, concreteErrorf(MethodMinkowskiSum, "operand without vertices: %w", ErrDegenerateSum)
	}
	o := gatherOptions(opts...)

	sums := make([][]float64, 0, len(a.coords)*len(b.coords))
	for _, x := range a.coords {
		for _, y := range b.coords {
			sums = append(sums, add(x, y))
		}
	}
	basis, err := affineBasis(sums, o.eps)
	if err != nil {
		return nil, concreteErrorf(MethodMinkowskiSum, "%w", err)
	}
	if n := max(a.Rank(), b.Rank()); len(basis) < n {
		return nil, concreteErrorf(MethodMinkowskiSum, "affine dimension %d below rank %d: %w", len(basis), n, ErrDegenerateSum)
	}
	out, err := Hull(sums, opts...)
	if err != nil {
		return nil, concreteErrorf(MethodMinkowskiSum, "%w", err)
	}

	return out, nil
}

// dedupe keeps the first of every group of points closer than tol.
func dedupe(points [][]float64, tol float64) [][]float64 {
	out := make([][]float64, 0, len(points))
next:
	for _, pt := range points {
		for _, q := range out {
			if dist(pt, q) <= tol {
				continue next
			}
		}
		out = append(out, pt)
	}

	return out
}

// localCoordinates solves B·y = p - p0 for every point, B having the basis
// vectors as columns.
func localCoordinates(pts, basis [][]float64, eps float64) ([][]float64, error) {
	rows := make([][]float64, len(pts[0]))
	for i := range rows {
		rows[i] = make([]float64, len(basis))
		for k, b := range basis {
			rows[i][k] = b[i]
		}
	}
	b, err := matrix.FromRows(rows)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(pts))
	for i, pt := range pts {
		if out[i], err = matrix.Solve(b, sub(pt, pts[0]), matrix.WithEpsilon(eps)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// findFacets returns the point sets of the facets of the hull of local,
// which spans all k dimensions, sorted lexicographically.
func findFacets(local [][]float64, k int, o Options) ([][]int, error) {
	tol := tolerance(o.eps, local)
	if k == 1 {
		lo, hi := local[0][0], local[0][0]
		for _, x := range local {
			lo, hi = math.Min(lo, x[0]), math.Max(hi, x[0])
		}
		var low, high []int
		for i, x := range local {
			if x[0]-lo <= tol {
				low = append(low, i)
			}
			if hi-x[0] <= tol {
				high = append(high, i)
			}
		}
		return [][]int{low, high}, nil
	}

	m := len(local)
	found := make([][][]int, m) // found[i0] = facets from subsets starting at i0
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i0 := 0; i0+k <= m; i0++ {
		i0 := i0
		g.Go(func() error {
			sets, err := facetsFrom(local, i0, k, tol, o.eps)
			found[i0] = sets
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var facets [][]int
	for _, sets := range found {
		for _, s := range sets {
			if key := setKey(s); !seen[key] {
				seen[key] = true
				facets = append(facets, s)
			}
		}
	}
	sortSets(facets)

	return facets, nil
}

// facetsFrom tests every k-subset whose smallest index is i0.
func facetsFrom(local [][]float64, i0, k int, tol, eps float64) ([][]int, error) {
	m := len(local)
	var out [][]int
	seen := make(map[string]bool)
	rest := make([]int, k-1)
	for i := range rest {
		rest[i] = i0 + 1 + i
	}
	rows := make([][]float64, k-1)

	for {
		for i, j := range rest {
			rows[i] = sub(local[j], local[i0])
		}
		mat, err := matrix.FromRows(rows)
		if err != nil {
			return nil, err
		}
		ns, err := matrix.NullSpace(mat, matrix.WithEpsilon(eps))
		if err != nil {
			return nil, err
		}
		if len(ns) == 1 {
			if set := supported(local, ns[0], dot(ns[0], local[i0]), tol); set != nil {
				if key := setKey(set); !seen[key] {
					seen[key] = true
					out = append(out, set)
				}
			}
		}

		// Next combination of rest in (i0, m).
		i := k - 2
		for i >= 0 && rest[i] == m-(k-1)+i {
			i--
		}
		if i < 0 {
			return out, nil
		}
		rest[i]++
		for j := i + 1; j < k-1; j++ {
			rest[j] = rest[j-1] + 1
		}
	}
}

// supported returns the points on the hyperplane n·x = b when all points
// lie on one side of it, and nil otherwise.
func supported(local [][]float64, n []float64, b, tol float64) []int {
	var above, below bool
	var on []int
	for i, x := range local {
		s := dot(n, x) - b
		switch {
		case s > tol:
			above = true
		case s < -tol:
			below = true
		default:
			on = append(on, i)
		}
		if above && below {
			return nil
		}
	}

	return on
}

// closeFaces closes the facet sets under pairwise intersection.
func closeFaces(facets [][]int) [][]int {
	faces := append([][]int{}, facets...)
	seen := make(map[string]bool, len(faces))
	for _, f := range faces {
		seen[setKey(f)] = true
	}
	for i := 0; i < len(faces); i++ {
		for j := 0; j < i; j++ {
			x := intersect(faces[i], faces[j])
			if len(x) == 0 {
				continue
			}
			if key := setKey(x); !seen[key] {
				seen[key] = true
				faces = append(faces, x)
			}
		}
	}

	return faces
}

// assembleLattice turns the proper faces of a rank-k hull into a polytope.
// It returns the point index of every vertex, in vertex order.
func assembleLattice(faces [][]int, k int) (*core.Polytope, []int, error) {
	// 1) Vertices are the singleton faces; reduce every face to them.
	var vertices []int
	for _, f := range faces {
		if len(f) == 1 {
			vertices = append(vertices, f[0])
		}
	}
	sort.Ints(vertices)
	vindex := make(map[int]int, len(vertices))
	for i, v := range vertices {
		vindex[v] = i
	}
	reduced := make([][]int, 0, len(faces))
	seen := make(map[string]bool, len(faces))
	for _, f := range faces {
		var r []int
		for _, pt := range f {
			if vi, ok := vindex[pt]; ok {
				r = append(r, vi)
			}
		}
		if key := setKey(r); len(r) > 0 && !seen[key] {
			seen[key] = true
			reduced = append(reduced, r)
		}
	}

	// 2) Rank by height: smaller faces first, one above the tallest subface.
	sort.SliceStable(reduced, func(a, b int) bool { return len(reduced[a]) < len(reduced[b]) })
	rank := make([]int, len(reduced))
	byRank := make([][][]int, k)
	for i, f := range reduced {
		for j := 0; j < i; j++ {
			if len(reduced[j]) < len(f) && subset(reduced[j], f) {
				rank[i] = max(rank[i], rank[j]+1)
			}
		}
		if rank[i] < k {
			byRank[rank[i]] = append(byRank[rank[i]], f)
		}
	}
	for r := range byRank {
		sortSets(byRank[r])
	}

	// 3) Subelements by inclusion between consecutive ranks.
	subs := make([][][]int, k+2)
	subs[0] = [][]int{{}}
	subs[1] = make([][]int, len(vertices))
	for i := range subs[1] {
		subs[1][i] = []int{0}
	}
	for r := 1; r < k; r++ {
		subs[r+1] = make([][]int, len(byRank[r]))
		for i, f := range byRank[r] {
			for j, g := range byRank[r-1] {
				if subset(g, f) {
					subs[r+1][i] = append(subs[r+1][i], j)
				}
			}
		}
	}
	top := make([]int, len(byRank[k-1]))
	for i := range top {
		top[i] = i
	}
	subs[k+1] = [][]int{top}

	p, err := core.Assemble(subs)
	if err != nil {
		return nil, nil, err
	}

	return p, vertices, nil
}

// intersect returns the common entries of two sorted sets.
func intersect(a, b []int) []int {
	var out []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// subset reports whether sorted set a is contained in sorted set b.
func subset(a, b []int) bool {
	return len(intersect(a, b)) == len(a)
}

func setKey(s []int) string {
	parts := make([]string, len(s))
	for i, x := range s {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}

func sortSets(sets [][]int) {
	sort.Slice(sets, func(a, b int) bool { return slices.Compare(sets[a], sets[b]) < 0 })
}
