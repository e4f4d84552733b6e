// SPDX-License-Identifier: MIT
// Package: polytope/concrete
//
// errors.go — sentinel errors for the concrete layer.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Errors from core, construct and matrix pass through wrapped with the
//     method name, so core.ErrOutOfRange and construct.ErrRankMismatch
//     remain matchable.

package concrete

import (
	"errors"
	"fmt"
)

// ErrIncompleteMapping indicates a vertex without a coordinate vector.
var ErrIncompleteMapping = errors.New("concrete: vertex without coordinates")

// ErrDimensionMismatch indicates coordinate vectors (or operands) of
// different dimensions, or a geometric operation that needs rank == dim.
var ErrDimensionMismatch = errors.New("concrete: dimension mismatch")

// ErrDegenerateSum indicates a Minkowski sum whose points span fewer
// dimensions than the larger operand rank.
var ErrDegenerateSum = errors.New("concrete: degenerate Minkowski sum")

// ErrNoCircumsphere indicates vertices that do not lie on a common sphere.
var ErrNoCircumsphere = errors.New("concrete: vertices are not concyclic")

// ErrCenterOnFacet indicates a facet hyperplane through the centroid, where
// polar reciprocation is undefined.
var ErrCenterOnFacet = errors.New("concrete: centroid lies on a facet hyperplane")

// ErrNilPolytope indicates a nil operand.
var ErrNilPolytope = errors.New("concrete: polytope is nil")

// Method names used as error context.
const (
	MethodWithCoordinates = "WithCoordinates"
	MethodCoordinates     = "Coordinates"
	MethodElementCentroid = "ElementCentroid"
	MethodMidpoints       = "Midpoints"
	MethodCircumcenter    = "Circumcenter"
	MethodTranslate       = "Translate"
	MethodTransform       = "Transform"
	MethodDual            = "Dual"
	MethodExtrude         = "Extrude"
	MethodPrism           = "Prism"
	MethodPyramid         = "Pyramid"
	MethodTegum           = "Tegum"
	MethodDuoprism        = "Duoprism"
	MethodCompound        = "Compound"
	MethodAntiprism       = "Antiprism"
	MethodHull            = "Hull"
	MethodMinkowskiSum    = "MinkowskiSum"
)

// concreteErrorf prefixes a formatted error with the method name, keeping
// every %w operand visible to errors.Is.
func concreteErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
