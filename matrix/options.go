// SPDX-License-Identifier: MIT
// Package matrix: functional options for the elimination kernels.
//
// Purpose:
//   - Centralize the numeric tolerance used to decide whether a pivot is zero.
//   - Keep defaults in a single place (defaultOptions) and validate eagerly.

package matrix

import "math"

// DefaultEpsilon is the pivot tolerance used by Rank, NullSpace and Solve.
// It is relative to the largest absolute entry of the reduced matrix.
const DefaultEpsilon = 1e-9

// DefaultValidateNaNInf is the finite-only policy applied by NewDense.
const DefaultValidateNaNInf = true

// panicEpsilonInvalid is the stable panic message of WithEpsilon.
const panicEpsilonInvalid = "matrix: WithEpsilon requires a finite eps >= 0"

// Option configures an elimination kernel.
type Option func(*Options)

// Options holds the resolved configuration of an elimination kernel.
type Options struct {
	eps float64 // relative pivot tolerance
}

// WithEpsilon sets the relative pivot tolerance.
//
// Behavior highlights:
//   - Panics on NaN, ±Inf or negative eps (programmer error, as in builders).
//
// AI-Hints:
//   - Raise eps for coordinates produced by long chains of float arithmetic.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the package defaults.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies user options over the defaults, ignoring nil entries.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
