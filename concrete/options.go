// SPDX-License-Identifier: MIT

package concrete

import (
	"math"
	"runtime"
)

// DefaultTolerance is the geometric tolerance used when none is given.
const DefaultTolerance = 1e-9

// Option configures numeric queries, Dual, Antiprism, Hull and MinkowskiSum.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	eps     float64 // geometric tolerance, relative to max(1, scale)
	workers int     // goroutines used by the hull facet search
}

func defaultOptions() Options {
	return Options{eps: DefaultTolerance, workers: runtime.GOMAXPROCS(0)}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithTolerance sets the geometric tolerance. Panics on NaN, ±Inf or eps < 0.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("concrete: WithTolerance requires a finite eps >= 0")
	}

	return func(o *Options) { o.eps = eps }
}

// WithWorkers bounds the goroutines of the hull facet search. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("concrete: WithWorkers(n<1)")
	}

	return func(o *Options) { o.workers = n }
}
