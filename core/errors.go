// SPDX-License-Identifier: MIT
// Package core: sentinel errors and the axiom violation type.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are wrapped with call-site context via fmt.Errorf("...: %w", ErrX).
//   - Axiom failures are reported as *AxiomError, which matches both
//     ErrAxiomViolation and the sentinel of its Kind.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a rank or index argument outside the structure.
	ErrOutOfRange = errors.New("core: rank or index out of range")

	// ErrNotIncident indicates a section was requested between elements that
	// are not incident (the low element is not below the high element).
	ErrNotIncident = errors.New("core: elements are not incident")

	// ErrDuplicateIncidence indicates an element listed the same subelement twice.
	ErrDuplicateIncidence = errors.New("core: duplicate incidence")

	// ErrAxiomViolation is matched by every *AxiomError.
	ErrAxiomViolation = errors.New("core: polytope axiom violated")

	// ErrMissingExtrema: rank -1 or rank n does not hold exactly one element.
	ErrMissingExtrema = errors.New("core: missing or repeated extremal element")

	// ErrUnequalChainLength: some maximal chain skips a rank.
	ErrUnequalChainLength = errors.New("core: maximal chains of unequal length")

	// ErrDiamondViolation: a rank-2 interval does not contain exactly two elements.
	ErrDiamondViolation = errors.New("core: diamond condition violated")

	// ErrDisconnected: the proper elements do not form a connected incidence graph.
	ErrDisconnected = errors.New("core: polytope is disconnected")
)

// AxiomKind enumerates the four polytope axioms checked by Validate.
type AxiomKind int

// Axiom kinds, in the order Validate checks them.
const (
	MissingExtrema AxiomKind = iota + 1
	UnequalChainLength
	DiamondViolation
	Disconnected
)

// String returns the axiom name.
func (k AxiomKind) String() string {
	switch k {
	case MissingExtrema:
		return "MissingExtrema"
	case UnequalChainLength:
		return "UnequalChainLength"
	case DiamondViolation:
		return "DiamondViolation"
	case Disconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}

func (k AxiomKind) sentinel() error {
	switch k {
	case MissingExtrema:
		return ErrMissingExtrema
	case UnequalChainLength:
		return ErrUnequalChainLength
	case DiamondViolation:
		return ErrDiamondViolation
	case Disconnected:
		return ErrDisconnected
	default:
		return ErrAxiomViolation
	}
}

// ElementRef names one element by rank and index within the rank.
type ElementRef struct {
	Rank  int
	Index int
}

// String formats the reference as "(rank:index)".
func (r ElementRef) String() string {
	return fmt.Sprintf("(%d:%d)", r.Rank, r.Index)
}

// AxiomError reports which axiom failed and the offending elements.
//
// Low and High are meaningful per kind:
//   - MissingExtrema: Low.Rank is the rank with the wrong element count.
//   - UnequalChainLength: Low is the element with no sub- or superelement.
//   - DiamondViolation: Low=F and High=G of the broken interval; Count is
//     the number of elements found strictly between them.
//   - Disconnected: Low is the first element unreachable from vertex 0.
type AxiomError struct {
	Kind  AxiomKind
	Low   ElementRef
	High  ElementRef
	Count int
}

// Error implements error.
func (e *AxiomError) Error() string {
	switch e.Kind {
	case MissingExtrema:
		return fmt.Sprintf("%v: rank %d holds %d elements, want 1", e.Kind.sentinel(), e.Low.Rank, e.Count)
	case UnequalChainLength:
		return fmt.Sprintf("%v: element %v ends its chain early", e.Kind.sentinel(), e.Low)
	case DiamondViolation:
		return fmt.Sprintf("%v: %d elements between %v and %v, want 2", e.Kind.sentinel(), e.Count, e.Low, e.High)
	case Disconnected:
		return fmt.Sprintf("%v: element %v unreachable", e.Kind.sentinel(), e.Low)
	default:
		return ErrAxiomViolation.Error()
	}
}

// Is reports whether target is ErrAxiomViolation or the sentinel for e.Kind.
func (e *AxiomError) Is(target error) bool {
	return target == ErrAxiomViolation || target == e.Kind.sentinel()
}

// coreErrorf prefixes err with a method tag, preserving it for errors.Is.
func coreErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
