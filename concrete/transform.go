// SPDX-License-Identifier: MIT

package concrete

import (
	"github.com/katalvlaran/polytope/matrix"
)

// Translate returns p moved by v.
// Errors: ErrDimensionMismatch when len(v) != Dim().
func (p *Polytope) Translate(v []float64) (*Polytope, error) {
	if len(v) != p.dim {
		return nil, concreteErrorf(MethodTranslate, "vector of dimension %d for %d: %w", len(v), p.dim, ErrDimensionMismatch)
	}
	out := make([][]float64, len(p.coords))
	for i, x := range p.coords {
		out[i] = add(x, v)
	}

	return fromOwned(p.abs, out), nil
}

// Scale returns p scaled by s about the origin.
func (p *Polytope) Scale(s float64) *Polytope {
	out := make([][]float64, len(p.coords))
	for i, x := range p.coords {
		out[i] = scaled(x, s)
	}

	return fromOwned(p.abs, out)
}

// Recenter returns p translated so that its centroid is the origin.
func (p *Polytope) Recenter() *Polytope {
	c := p.Centroid()
	out := make([][]float64, len(p.coords))
	for i, x := range p.coords {
		out[i] = sub(x, c)
	}

	return fromOwned(p.abs, out)
}

// Transform returns p with every vertex x replaced by m·x. The result has
// dimension m.Rows().
//
// Errors:
//   - matrix.ErrNilMatrix for nil m.
//   - ErrDimensionMismatch when m.Cols() != Dim().
func (p *Polytope) Transform(m matrix.Matrix) (*Polytope, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, concreteErrorf(MethodTransform, "%w", err)
	}
	if m.Cols() != p.dim {
		return nil, concreteErrorf(MethodTransform, "%d columns for dimension %d: %w", m.Cols(), p.dim, ErrDimensionMismatch)
	}
	out := make([][]float64, len(p.coords))
	for i, x := range p.coords {
		y, err := matrix.MatVec(m, x)
		if err != nil {
			return nil, concreteErrorf(MethodTransform, "vertex %d: %w", i, err)
		}
		out[i] = y
	}

	return fromOwned(p.abs, out), nil
}
