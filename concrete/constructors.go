// SPDX-License-Identifier: MIT
// Package: polytope/concrete
//
// constructors.go — geometric realizations of the construct operations.
//
// Each constructor builds the abstract result with package construct and
// places its vertices using the vertex order construct documents:
//
//	Extrude, Prism  vertex i of p  → 2i (pulled in), 2i+1 (pushed out)
//	Pyramid         p's vertices, then the apex
//	Tegum           p's vertices, then q's (none from a point operand)
//	Duoprism        (i, j) → i*v(q) + j
//	Compound        p's vertices, then q's
//	Antiprism       p's vertices, then one per facet of p
//
// Dual and Antiprism need a full-dimensional input (rank == dim >= 1):
// they place vertices on facet normals.

package concrete

import (
	"math"

	"github.com/katalvlaran/polytope/construct"
	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/matrix"
)

// VertexMap maps a vertex vector to a new vector.
type VertexMap func([]float64) []float64

// Promote returns the VertexMap appending coordinate h.
func Promote(h float64) VertexMap {
	return func(x []float64) []float64 { return concat(x, []float64{h}) }
}

// Extrude returns the prism over p whose two copies of vertex i are
// pullIn(x_i) (vertex 2i) and pushOut(x_i) (vertex 2i+1).
//
// Errors:
//   - ErrIncompleteMapping when a map returns nil.
//   - ErrDimensionMismatch when the maps return vectors of different lengths.
func Extrude(p *Polytope, pullIn, pushOut VertexMap) (*Polytope, error) {
	if p == nil || pullIn == nil || pushOut == nil {
		return nil, concreteErrorf(MethodExtrude, "%w", ErrNilPolytope)
	}
	abs, err := construct.Prism(p.abs)
	if err != nil {
		return nil, concreteErrorf(MethodExtrude, "%w", err)
	}
	coords := make([][]float64, 0, 2*len(p.coords))
	for _, x := range p.coords {
		coords = append(coords, pullIn(clone(x)), pushOut(clone(x)))
	}
	out, err := WithCoordinates(abs, coords)
	if err != nil {
		return nil, concreteErrorf(MethodExtrude, "%w", err)
	}

	return out, nil
}

// Prism returns the right prism of height h over p, in dimension Dim()+1,
// with p's copies at -h/2 and +h/2.
func Prism(p *Polytope, h float64) (*Polytope, error) {
	out, err := Extrude(p, Promote(-h/2), Promote(h/2))
	if err != nil {
		return nil, concreteErrorf(MethodPrism, "%w", err)
	}

	return out, nil
}

// Pyramid returns the right pyramid of height h over p, in dimension
// Dim()+1: p at height 0 and the apex above its centroid.
func Pyramid(p *Polytope, h float64) (*Polytope, error) {
	if p == nil {
		return nil, concreteErrorf(MethodPyramid, "%w", ErrNilPolytope)
	}
	abs, err := construct.Pyramid(p.abs)
	if err != nil {
		return nil, concreteErrorf(MethodPyramid, "%w", err)
	}
	coords := make([][]float64, 0, len(p.coords)+1)
	for _, x := range p.coords {
		coords = append(coords, concat(x, []float64{0}))
	}
	coords = append(coords, concat(p.Centroid(), []float64{h}))

	return fromOwned(abs, coords), nil
}

// Tegum returns the free sum of p and q in dimension Dim(p)+Dim(q): each
// operand is recentred and placed in its own coordinate block.
func Tegum(p, q *Polytope) (*Polytope, error) {
	if p == nil || q == nil {
		return nil, concreteErrorf(MethodTegum, "%w", ErrNilPolytope)
	}
	abs, err := construct.Tegum(p.abs, q.abs)
	if err != nil {
		return nil, concreteErrorf(MethodTegum, "%w", err)
	}
	pc, qc := p.Centroid(), q.Centroid()
	zp, zq := make([]float64, p.dim), make([]float64, q.dim)
	coords := make([][]float64, 0, len(p.coords)+len(q.coords))
	// A point operand takes part only through its nullitope.
	if p.Rank() >= 1 {
		for _, x := range p.coords {
			coords = append(coords, concat(sub(x, pc), zq))
		}
	}
	if q.Rank() >= 1 {
		for _, y := range q.coords {
			coords = append(coords, concat(zp, sub(y, qc)))
		}
	}

	return fromOwned(abs, coords), nil
}

// Duoprism returns the Cartesian product of p and q in dimension
// Dim(p)+Dim(q).
func Duoprism(p, q *Polytope) (*Polytope, error) {
	if p == nil || q == nil {
		return nil, concreteErrorf(MethodDuoprism, "%w", ErrNilPolytope)
	}
	abs, err := construct.Duoprism(p.abs, q.abs)
	if err != nil {
		return nil, concreteErrorf(MethodDuoprism, "%w", err)
	}
	coords := make([][]float64, 0, len(p.coords)*len(q.coords))
	for _, x := range p.coords {
		for _, y := range q.coords {
			coords = append(coords, concat(x, y))
		}
	}

	return fromOwned(abs, coords), nil
}

// Compound returns p and q as one compound; both keep their coordinates.
// Errors: ErrDimensionMismatch for operands of different Dim.
func Compound(p, q *Polytope) (*Polytope, error) {
	if p == nil || q == nil {
		return nil, concreteErrorf(MethodCompound, "%w", ErrNilPolytope)
	}
	if p.dim != q.dim {
		return nil, concreteErrorf(MethodCompound, "dimensions %d and %d: %w", p.dim, q.dim, ErrDimensionMismatch)
	}
	abs, err := construct.Compound(p.abs, q.abs)
	if err != nil {
		return nil, concreteErrorf(MethodCompound, "%w", err)
	}
	coords := make([][]float64, 0, len(p.coords)+len(q.coords))
	for _, x := range p.coords {
		coords = append(coords, clone(x))
	}
	for _, y := range q.coords {
		coords = append(coords, clone(y))
	}

	return fromOwned(abs, coords), nil
}

// Dual returns the polar reciprocal of p about its centroid c with unit
// radius: facet i, on the hyperplane at distance d from c with outward
// normal n, becomes vertex c + n/d.
//
// Errors:
//   - ErrDimensionMismatch unless Rank() == Dim() >= 1, or when a facet does
//     not span a hyperplane.
//   - ErrCenterOnFacet when a facet hyperplane passes through c.
func Dual(p *Polytope, opts ...Option) (*Polytope, error) {
	if err := fullDimensional(MethodDual, p); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	c := p.Centroid()
	facets := p.abs.ElementCount(p.Rank() - 1)
	coords := make([][]float64, facets)
	for i := range coords {
		n, d, err := p.facetPlane(i, c, o)
		if err != nil {
			return nil, concreteErrorf(MethodDual, "%w", err)
		}
		coords[i] = add(c, scaled(n, 1/d))
	}

	return fromOwned(core.Dual(p.abs), coords), nil
}

// Antiprism returns the antiprism of height h over p in dimension Dim()+1.
// The base is p at -h/2. The top holds one vertex per facet, on the
// facet's outward normal at the mean vertex distance from the centroid,
// at +h/2. For a regular polygon this is the uniform antiprism shape.
//
// Errors: as Dual.
func Antiprism(p *Polytope, h float64, opts ...Option) (*Polytope, error) {
	if err := fullDimensional(MethodAntiprism, p); err != nil {
		return nil, err
	}
	abs, err := construct.Antiprism(p.abs)
	if err != nil {
		return nil, concreteErrorf(MethodAntiprism, "%w", err)
	}
	o := gatherOptions(opts...)
	c := p.Centroid()
	var radius float64
	for _, x := range p.coords {
		radius += dist(x, c)
	}
	radius /= float64(len(p.coords))

	facets := p.abs.ElementCount(p.Rank() - 1)
	coords := make([][]float64, 0, len(p.coords)+facets)
	for _, x := range p.coords {
		coords = append(coords, concat(x, []float64{-h / 2}))
	}
	for i := 0; i < facets; i++ {
		n, _, err := p.facetPlane(i, c, o)
		if err != nil {
			return nil, concreteErrorf(MethodAntiprism, "%w", err)
		}
		coords = append(coords, concat(add(c, scaled(n, radius)), []float64{h / 2}))
	}

	return fromOwned(abs, coords), nil
}

// fullDimensional checks Rank() == Dim() >= 1.
func fullDimensional(method string, p *Polytope) error {
	if p == nil {
		return concreteErrorf(method, "%w", ErrNilPolytope)
	}
	if p.Rank() < 1 || p.Rank() != p.dim {
		return concreteErrorf(method, "rank %d in dimension %d: %w", p.Rank(), p.dim, ErrDimensionMismatch)
	}

	return nil
}

// facetPlane returns the outward unit normal n of facet i and the distance
// d > 0 of its hyperplane from c. Requires Rank() == Dim().
func (p *Polytope) facetPlane(i int, c []float64, o Options) ([]float64, float64, error) {
	vs, err := p.abs.Vertices(p.Rank()-1, i)
	if err != nil {
		return nil, 0, err
	}
	x0 := p.coords[vs[0]]
	tol := tolerance(o.eps, p.coords)

	var n []float64
	if p.dim == 1 {
		n = []float64{1}
	} else {
		rows := make([][]float64, 0, len(vs)-1)
		for _, v := range vs[1:] {
			rows = append(rows, sub(p.coords[v], x0))
		}
		if len(rows) == 0 {
			return nil, 0, concreteErrorf(MethodDual, "facet %d: %w", i, ErrDimensionMismatch)
		}
		m, err := matrix.FromRows(rows)
		if err != nil {
			return nil, 0, err
		}
		ns, err := matrix.NullSpace(m, matrix.WithEpsilon(o.eps))
		if err != nil {
			return nil, 0, err
		}
		if len(ns) != 1 {
			return nil, 0, concreteErrorf(MethodDual, "facet %d spans no hyperplane: %w", i, ErrDimensionMismatch)
		}
		n = ns[0]
	}

	d := dot(n, sub(x0, c))
	if math.Abs(d) <= tol {
		return nil, 0, concreteErrorf(MethodDual, "facet %d: %w", i, ErrCenterOnFacet)
	}
	if d < 0 {
		n, d = scaled(n, -1), -d
	}

	return n, d, nil
}
