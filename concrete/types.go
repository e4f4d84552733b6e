// SPDX-License-Identifier: MIT
// Package: polytope/concrete
//
// types.go — the concrete polytope: an abstract polytope plus one
// coordinate vector per vertex, all of the same dimension.
//
// Contract:
//   • Immutable after construction; every accessor returns copies.
//   • Coordinates are indexed like the vertices of Abstract().
//   • Dim() is the length of the vectors (0 when there are no vertices).

package concrete

import (
	"github.com/katalvlaran/polytope/core"
)

// Polytope is a core.Polytope with vertex coordinates.
type Polytope struct {
	abs    *core.Polytope
	coords [][]float64
	dim    int
}

// WithCoordinates attaches coords[v] to every vertex v of p. The vectors
// are copied.
//
// Errors:
//   - ErrNilPolytope for nil p.
//   - ErrIncompleteMapping when len(coords) differs from the vertex count
//     or some vector is nil.
//   - ErrDimensionMismatch when the vectors differ in length.
func WithCoordinates(p *core.Polytope, coords [][]float64) (*Polytope, error) {
	if p == nil {
		return nil, concreteErrorf(MethodWithCoordinates, "%w", ErrNilPolytope)
	}
	v := p.ElementCount(0)
	if len(coords) != v {
		return nil, concreteErrorf(MethodWithCoordinates, "%d vectors for %d vertices: %w", len(coords), v, ErrIncompleteMapping)
	}

	dim := 0
	out := make([][]float64, v)
	for i, c := range coords {
		if c == nil {
			return nil, concreteErrorf(MethodWithCoordinates, "vertex %d: %w", i, ErrIncompleteMapping)
		}
		if i == 0 {
			dim = len(c)
		} else if len(c) != dim {
			return nil, concreteErrorf(MethodWithCoordinates, "vertex %d has dimension %d, want %d: %w", i, len(c), dim, ErrDimensionMismatch)
		}
		out[i] = clone(c)
	}

	return &Polytope{abs: p, coords: out, dim: dim}, nil
}

// fromOwned wraps coordinates the caller no longer references.
func fromOwned(p *core.Polytope, coords [][]float64) *Polytope {
	dim := 0
	if len(coords) > 0 {
		dim = len(coords[0])
	}

	return &Polytope{abs: p, coords: coords, dim: dim}
}

// Abstract returns the underlying abstract polytope.
func (p *Polytope) Abstract() *core.Polytope { return p.abs }

// Dim returns the dimension of the coordinate vectors.
func (p *Polytope) Dim() int { return p.dim }

// Rank returns the rank of the abstract polytope.
func (p *Polytope) Rank() int { return p.abs.Rank() }

// VertexCount returns the number of vertices.
func (p *Polytope) VertexCount() int { return len(p.coords) }

// Coordinates returns a copy of the vector of vertex v.
// Errors: core.ErrOutOfRange.
func (p *Polytope) Coordinates(v int) ([]float64, error) {
	if v < 0 || v >= len(p.coords) {
		return nil, concreteErrorf(MethodCoordinates, "vertex %d: %w", v, core.ErrOutOfRange)
	}

	return clone(p.coords[v]), nil
}

// Points returns a copy of all vertex vectors in vertex order.
func (p *Polytope) Points() [][]float64 {
	out := make([][]float64, len(p.coords))
	for i, c := range p.coords {
		out[i] = clone(c)
	}

	return out
}
