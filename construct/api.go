// SPDX-License-Identifier: MIT
// Package: polytope/construct
//
// api.go — public entry points for the construct package.
//
// Design contract:
//   - Every constructor is a pure function of validated inputs: inputs are
//     never modified, and no partial result is ever returned.
//   - Preconditions (nil operands, ranks) are checked before allocating.
//   - Results are assembled without re-validation; correctness is a proof
//     obligation of the constructor, asserted under -tags polytope_debug.
//   - Indexing is deterministic: equal inputs give Equal results.
//
// Compound marks: Dual, Duoprism, PetrieDual and whole sections keep them.
// Join, Pyramid, Tegum and Antiprism connect the parts of a compound, so
// their results are plain polytopes unless the other operand is trivial.

package construct

import (
	"github.com/katalvlaran/polytope/core"
)

// Join returns the pyramid product of p and q: one element (F, G) for
// every pair of elements, of rank rF + rG + 1. The result has rank
// rank(p) + rank(q) + 1. Join(p, Point) is the pyramid over p, Join with
// the nullitope is the identity.
func Join(p, q *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodJoin, p, q); err != nil {
		return nil, err
	}
	var opts []core.AssembleOption
	if (p.IsCompound() && q.Rank() == -1) || (q.IsCompound() && p.Rank() == -1) {
		opts = append(opts, core.AsCompound())
	}
	out, err := product(p, q, joinShape(p.Rank(), q.Rank()), opts...)
	if err != nil {
		return nil, constructErrorf(MethodJoin, "%w", err)
	}

	return checked(MethodJoin, out, nil)
}

// Pyramid returns the pyramid over p, of rank n+1 with one more vertex
// than p. The apex is the last vertex; p's vertices keep their indices.
func Pyramid(p *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodPyramid, p); err != nil {
		return nil, err
	}

	return Join(p, core.Point())
}

// Duoprism returns the prism product of p and q: one element (F, G) for
// every pair of non-null elements, of rank rF + rG, under a new
// nullitope. The result has rank rank(p) + rank(q). Both operands need
// rank >= 0 (ErrRankMismatch).
func Duoprism(p, q *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodDuoprism, p, q); err != nil {
		return nil, err
	}
	if p.Rank() < 0 || q.Rank() < 0 {
		return nil, constructErrorf(MethodDuoprism, "ranks %d and %d, want >= 0: %w", p.Rank(), q.Rank(), ErrRankMismatch)
	}
	var opts []core.AssembleOption
	if p.IsCompound() || q.IsCompound() {
		opts = append(opts, core.AsCompound())
	}
	out, err := product(p, q, duoprismShape(p.Rank(), q.Rank()), opts...)
	if err != nil {
		return nil, constructErrorf(MethodDuoprism, "%w", err)
	}

	return checked(MethodDuoprism, out, nil)
}

// Prism returns the prism over p: rank n+1, twice the vertices of p.
// Vertex i of p becomes vertices 2i (bottom) and 2i+1 (top).
func Prism(p *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodPrism, p); err != nil {
		return nil, err
	}
	out, err := Duoprism(p, core.Segment())
	if err != nil {
		return nil, constructErrorf(MethodPrism, "%w", err)
	}

	return out, nil
}

// Tegum returns the free sum of p and q: one element (F, G) for every
// pair of non-maximal elements, of rank rF + rG + 1, under a new maximal
// element. The result has rank rank(p) + rank(q); a point operand is the
// identity. Both operands need rank >= 0 (ErrRankMismatch).
func Tegum(p, q *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodTegum, p, q); err != nil {
		return nil, err
	}
	if p.Rank() < 0 || q.Rank() < 0 {
		return nil, constructErrorf(MethodTegum, "ranks %d and %d, want >= 0: %w", p.Rank(), q.Rank(), ErrRankMismatch)
	}
	var opts []core.AssembleOption
	if (p.IsCompound() && q.Rank() == 0) || (q.IsCompound() && p.Rank() == 0) {
		opts = append(opts, core.AsCompound())
	}
	out, err := product(p, q, tegumShape(p.Rank(), q.Rank()), opts...)
	if err != nil {
		return nil, constructErrorf(MethodTegum, "%w", err)
	}

	return checked(MethodTegum, out, nil)
}

// Bipyramid returns the bipyramid over p: rank n+1, the vertices of p
// followed by two apexes. It is the dual of the prism over the dual of p.
func Bipyramid(p *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodBipyramid, p); err != nil {
		return nil, err
	}
	out, err := Tegum(p, core.Segment())
	if err != nil {
		return nil, constructErrorf(MethodBipyramid, "%w", err)
	}

	return out, nil
}

// Antiprism returns the antiprism over p: rank n+1, with p as one base
// and its dual as the other. Its vertices are those of p followed by one
// per facet of p.
//
// This is not dual(prism(dual(p))); that composition is Bipyramid.
func Antiprism(p *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodAntiprism, p); err != nil {
		return nil, err
	}
	out, err := antiprism(p)
	if err != nil {
		return nil, constructErrorf(MethodAntiprism, "%w", err)
	}

	return checked(MethodAntiprism, out, nil)
}

// Compound returns p and q sharing their nullitope and maximal element,
// with disjoint proper elements. The ranks must be equal and at least
// MinCompoundRank (ErrRankMismatch). The result reports IsCompound.
func Compound(p, q *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodCompound, p, q); err != nil {
		return nil, err
	}
	if p.Rank() != q.Rank() {
		return nil, constructErrorf(MethodCompound, "ranks %d and %d differ: %w", p.Rank(), q.Rank(), ErrRankMismatch)
	}
	if p.Rank() < MinCompoundRank {
		return nil, constructErrorf(MethodCompound, "rank %d below %d: %w", p.Rank(), MinCompoundRank, ErrRankMismatch)
	}
	out, err := compound(p, q)
	if err != nil {
		return nil, constructErrorf(MethodCompound, "%w", err)
	}

	return checked(MethodCompound, out, nil)
}

// PetrieDual returns the Petrial of a polyhedron: same vertices and
// edges, with the Petrie polygons as faces. Applied twice it gives back
// the faces of p, possibly in another order.
//
// Errors: ErrPetrieUndefined for rank != 3 or when the Petrie polygons do
// not form a polytope; the axiom failure is wrapped alongside.
func PetrieDual(p *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodPetrieDual, p); err != nil {
		return nil, err
	}
	if p.Rank() != PetrieRank {
		return nil, constructErrorf(MethodPetrieDual, "rank %d: %w", p.Rank(), ErrPetrieUndefined)
	}
	out, err := petrieDual(p)
	if err != nil {
		return nil, constructErrorf(MethodPetrieDual, "%w: %w", ErrPetrieUndefined, err)
	}
	if err = out.Validate(); err != nil {
		return nil, constructErrorf(MethodPetrieDual, "%w: %w", ErrPetrieUndefined, err)
	}

	return out, nil
}

// Dual returns core.Dual(p).
func Dual(p *core.Polytope) (*core.Polytope, error) {
	if err := checkOperands(MethodDual, p); err != nil {
		return nil, err
	}

	return checked(MethodDual, core.Dual(p), nil)
}

// VertexFigure returns the vertex figure of p at vertex v.
func VertexFigure(p *core.Polytope, v int) (*core.Polytope, error) {
	if err := checkOperands(MethodVertexFigure, p); err != nil {
		return nil, err
	}
	out, err := p.VertexFigure(v)
	if err != nil {
		return nil, constructErrorf(MethodVertexFigure, "%w", err)
	}

	return checked(MethodVertexFigure, out, nil)
}

// Section returns the section of p between (lowRank, low) and (highRank, high).
func Section(p *core.Polytope, lowRank, low, highRank, high int) (*core.Polytope, error) {
	if err := checkOperands(MethodSection, p); err != nil {
		return nil, err
	}
	out, err := p.Section(lowRank, low, highRank, high)
	if err != nil {
		return nil, constructErrorf(MethodSection, "%w", err)
	}

	return checked(MethodSection, out, nil)
}

// checkOperands rejects nil operands.
func checkOperands(method string, ps ...*core.Polytope) error {
	for i, p := range ps {
		if p == nil {
			return constructErrorf(method, "operand %d: %w", i, ErrNilPolytope)
		}
	}

	return nil
}
