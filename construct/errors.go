// SPDX-License-Identifier: MIT
// Package: polytope/construct
//
// errors.go — sentinel errors for the construct package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Errors from core (ErrOutOfRange, ErrNotIncident, *AxiomError) pass
//     through wrapped with the constructor name.
//   • Constructors never panic on user input. The only panic is the
//     proof-obligation check compiled in with the polytope_debug tag.

package construct

import (
	"errors"
	"fmt"
)

// ErrRankMismatch indicates operands whose ranks the constructor cannot
// combine: compounds of unequal ranks or of rank < 2, products with a
// nullitope where a non-empty operand is required.
// Usage: if errors.Is(err, ErrRankMismatch) { /* check operand ranks */ }.
var ErrRankMismatch = errors.New("construct: rank mismatch")

// ErrPetrieUndefined indicates the Petrie dual does not exist: the input
// is not a polyhedron (rank 3), or its Petrie polygons do not form a
// valid polytope (for example a Petrie polygon using an edge twice).
// Usage: if errors.Is(err, ErrPetrieUndefined) { /* skip Petrial */ }.
var ErrPetrieUndefined = errors.New("construct: Petrie dual undefined")

// ErrNilPolytope indicates a nil *core.Polytope operand.
var ErrNilPolytope = errors.New("construct: polytope is nil")

// constructErrorf prefixes a formatted error with the constructor name,
// keeping every %w operand visible to errors.Is.
func constructErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
