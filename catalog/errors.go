// SPDX-License-Identifier: MIT
// Package: polytope/catalog
//
// errors.go — sentinel errors for the catalog package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Errors from construct and concrete pass through wrapped with the
//     constructor name.

package catalog

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (polygon size,
// simplex or cube rank) is smaller than the allowed minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("catalog: parameter too small")

// ErrUnknownName indicates a name that Lookup or ParsePlatonic cannot
// resolve, including a family name with a malformed parameter.
// Usage: if errors.Is(err, ErrUnknownName) { /* list Names() */ }.
var ErrUnknownName = errors.New("catalog: unknown polytope name")

// catalogErrorf prefixes a formatted error with the constructor name,
// keeping every %w operand visible to errors.Is.
func catalogErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

// validateMin ensures got >= min.
func validateMin(method string, got, min int) error {
	if got < min {
		return catalogErrorf(method, "parameter must be >= %d, got %d: %w", min, got, ErrTooFewVertices)
	}

	return nil
}
