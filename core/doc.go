// SPDX-License-Identifier: MIT

// Package core provides the abstract incidence structure of a polytope:
// a graded poset from the nullitope (rank -1) to the polytope itself
// (rank n), stored as one ElementList per rank.
//
// What is a polytope here?
//
//	A Polytope P of rank n is a family of elements graded by rank, where
//	every element of rank r >= 0 lists its immediate subelements (rank r-1)
//	and every element of rank r < n lists its immediate superelements
//	(rank r+1). Incidences are integer indices, sorted, always symmetric.
//
// Axioms (checked by Validate, in this order):
//
//	– MissingExtrema      exactly one element at rank -1 and at rank n
//	– UnequalChainLength  no maximal chain skips a rank
//	– DiamondViolation    every interval of rank gap 2 holds two elements
//	– Disconnected        proper elements connected (n >= 2, non-compounds)
//
// Construction:
//
//	core.New(vertices, boundaries...)        // validated, original "vertices + boundaries" layout
//	core.NewBuilder(rank)                    // incremental, validated on Build
//	core.FromFaces(vertices, faces, opts...) // polyhedra from cyclic face lists
//	core.Assemble(subs, opts...)             // trusted fast path, no axiom check
//
// Queries:
//
//	Rank, ElementCount, Counts, Element, Elements, Subelements,
//	Superelements, Incident, Vertices, IsCompound, Equal
//
// Derived structures:
//
//	Section(lr, li, hr, hi), Facet(i), VertexFigure(v), Dual(p)
//
// Concurrency:
//
//	A Polytope never changes after construction; any number of goroutines
//	may read one without locking. Validate may fan the diamond check out
//	over goroutines (WithWorkers).
//
// Errors:
//
//	ErrOutOfRange, ErrNotIncident, ErrDuplicateIncidence, and *AxiomError
//	(matches ErrAxiomViolation plus one kind sentinel).
package core
