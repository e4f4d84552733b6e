// SPDX-License-Identifier: MIT
// Package: polytope/concrete
//
// queries.go — numeric queries derived from vertex coordinates.
//
// Contract:
//   • Centroids are vertex centroids (the mean of the vertices below an
//     element), not centres of mass.
//   • Results are fresh slices; the polytope is never modified.

package concrete

import (
	"math"

	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/matrix"
)

// Centroid returns the mean of all vertices (the zero vector when there
// are none).
func (p *Polytope) Centroid() []float64 {
	return mean(p.coords, nil, p.dim)
}

// ElementCentroid returns the mean of the vertices below element (rank, idx).
//
// Errors:
//   - core.ErrOutOfRange for a bad element or for the nullitope, which has
//     no vertices.
func (p *Polytope) ElementCentroid(rank, idx int) ([]float64, error) {
	vs, err := p.abs.Vertices(rank, idx)
	if err != nil {
		return nil, concreteErrorf(MethodElementCentroid, "%w", err)
	}
	if len(vs) == 0 {
		return nil, concreteErrorf(MethodElementCentroid, "element (%d:%d) has no vertices: %w", rank, idx, core.ErrOutOfRange)
	}

	return mean(p.coords, vs, p.dim), nil
}

// Midpoints returns the centroid of every element of the given rank,
// indexed like the elements.
// Errors: core.ErrOutOfRange unless 0 <= rank <= Rank().
func (p *Polytope) Midpoints(rank int) ([][]float64, error) {
	if rank < 0 || rank > p.Rank() {
		return nil, concreteErrorf(MethodMidpoints, "rank %d: %w", rank, core.ErrOutOfRange)
	}
	out := make([][]float64, p.abs.ElementCount(rank))
	for i := range out {
		c, err := p.ElementCentroid(rank, i)
		if err != nil {
			return nil, concreteErrorf(MethodMidpoints, "%w", err)
		}
		out[i] = c
	}

	return out, nil
}

// EdgeLengths returns the length of every edge, indexed like the edges.
func (p *Polytope) EdgeLengths() []float64 {
	edges, err := p.abs.Elements(1)
	if err != nil {
		return nil // rank < 1: no edges
	}
	out := make([]float64, len(edges))
	for i, e := range edges {
		out[i] = dist(p.coords[e.Sub(0)], p.coords[e.Sub(1)])
	}

	return out
}

// Circumcenter returns the point equidistant from all vertices, inside the
// affine hull of the vertices.
//
// Errors:
//   - ErrNoCircumsphere when there are no vertices or they are not concyclic.
func (p *Polytope) Circumcenter(opts ...Option) ([]float64, error) {
	c, _, err := p.circumsphere(gatherOptions(opts...))

	return c, err
}

// Circumradius returns the distance from the circumcenter to the vertices.
// Errors: as Circumcenter.
func (p *Polytope) Circumradius(opts ...Option) (float64, error) {
	_, r, err := p.circumsphere(gatherOptions(opts...))

	return r, err
}

// circumsphere solves for c = x0 + Σ y_k b_k, with b_k an affine basis of
// the vertices, from 2(x_i - x0)·(c - x0) = |x_i - x0|², then checks every
// vertex against the radius.
func (p *Polytope) circumsphere(o Options) ([]float64, float64, error) {
	if len(p.coords) == 0 {
		return nil, 0, concreteErrorf(MethodCircumcenter, "no vertices: %w", ErrNoCircumsphere)
	}
	x0 := p.coords[0]
	basis, err := affineBasis(p.coords, o.eps)
	if err != nil {
		return nil, 0, concreteErrorf(MethodCircumcenter, "%w", err)
	}
	if len(basis) == 0 {
		return clone(x0), 0, nil
	}

	rows := make([][]float64, 0, len(p.coords)-1)
	rhs := make([]float64, 0, len(p.coords)-1)
	for _, x := range p.coords[1:] {
		d := sub(x, x0)
		row := make([]float64, len(basis))
		for k, b := range basis {
			row[k] = 2 * dot(d, b)
		}
		rows = append(rows, row)
		rhs = append(rhs, dot(d, d))
	}
	a, err := matrix.FromRows(rows)
	if err != nil {
		return nil, 0, concreteErrorf(MethodCircumcenter, "%w", err)
	}
	y, err := matrix.Solve(a, rhs, matrix.WithEpsilon(o.eps))
	if err != nil {
		return nil, 0, concreteErrorf(MethodCircumcenter, "%w: %w", ErrNoCircumsphere, err)
	}

	c := clone(x0)
	for k, b := range basis {
		c = add(c, scaled(b, y[k]))
	}
	r := dist(c, x0)
	tol := o.eps * math.Max(1, r)
	for i, x := range p.coords {
		if math.Abs(dist(c, x)-r) > tol {
			return nil, 0, concreteErrorf(MethodCircumcenter, "vertex %d off the sphere: %w", i, ErrNoCircumsphere)
		}
	}

	return c, r, nil
}
