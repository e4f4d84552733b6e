// SPDX-License-Identifier: MIT

// Package construct derives new abstract polytopes from existing ones.
//
// What:
//
//   - Products on pairs of elements:
//     Join (pyramid product), Duoprism (prism product), Tegum (free sum).
//   - Their one-operand forms:
//     Pyramid = Join(P, point), Prism = Duoprism(P, segment),
//     Bipyramid = Tegum(P, segment).
//   - Antiprism: intervals F <= G of P under reversed order in G.
//   - Compound: two polytopes of equal rank >= 2 sharing their extrema.
//   - PetrieDual: faces replaced by Petrie polygons (rank 3 only).
//   - Dual, VertexFigure, Section: facades over core with the same checks.
//
// Rank rules:
//
//	Join(p, q)       rank p + rank q + 1
//	Duoprism(p, q)   rank p + rank q          (ranks >= 0)
//	Tegum(p, q)      rank p + rank q          (ranks >= 0)
//	Pyramid, Prism, Bipyramid, Antiprism      rank p + 1
//	Compound(p, q)   rank p = rank q >= 2
//	PetrieDual(p)    rank p = 3
//
// Indexing:
//
//	Pyramid: the apex is the last vertex.
//	Prism:   vertex i of p becomes 2i (bottom) and 2i+1 (top).
//	Bipyramid: the two apexes follow the vertices of p.
//	Antiprism: the vertices of p, then one vertex per facet of p.
//	Compound: the elements of p, then those of q, at every rank.
//
// Errors:
//
//   - ErrNilPolytope      nil operand
//   - ErrRankMismatch     operand ranks the constructor cannot combine
//   - ErrPetrieUndefined  non-polyhedron, or Petrie polygons not forming a polytope
//   - core.ErrOutOfRange, core.ErrNotIncident from the section facades
//
// Debugging:
//
//	go test -tags polytope_debug ./construct/...
//
// re-validates every result and panics (after an slog.Error record) when
// a constructor breaks a polytope axiom.
package construct
