// SPDX-License-Identifier: MIT
// Package core: polytope axiom validation.
//
// Validate checks, in order:
//  1. MissingExtrema      — one element at rank -1 and one at rank n.
//  2. UnequalChainLength  — every element of rank >= 0 has a subelement and
//     every element of rank < n a superelement, so no maximal chain skips a rank.
//  3. DiamondViolation    — every interval F < G of rank gap 2 holds exactly
//     two elements.
//  4. Disconnected        — for n >= 2 the proper elements are connected
//     (skipped for compounds).
//
// The diamond check dominates the cost and runs one goroutine per rank via
// errgroup. Each worker reads the immutable structure and writes only its
// own result slot; the lowest-rank violation wins, so the reported error is
// deterministic regardless of scheduling.
//
// Complexity: O(Σ_G Σ_{H<G} deg(H)) for the diamond check, O(V+I) for the rest.

package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ValidateOption configures Validate.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	workers int
}

func defaultValidateConfig() validateConfig {
	return validateConfig{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of goroutines used by the diamond check.
// A value of 1 makes validation fully sequential. Panics on n < 1.
func WithWorkers(n int) ValidateOption {
	if n < 1 {
		panic("core: WithWorkers(n<1)")
	}

	return func(c *validateConfig) { c.workers = n }
}

// Validate checks the four polytope axioms and returns nil or an
// *AxiomError. It never mutates p, so repeated calls return the same result.
func (p *Polytope) Validate(opts ...ValidateOption) error {
	cfg := defaultValidateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := p.checkExtrema(); err != nil {
		return err
	}
	if err := p.checkChains(); err != nil {
		return err
	}
	if err := p.checkDiamonds(cfg.workers); err != nil {
		return err
	}
	if p.Rank() >= 2 && !p.compound {
		return p.checkConnected()
	}

	return nil
}

func (p *Polytope) checkExtrema() error {
	n := p.Rank()
	if c := p.ElementCount(-1); c != 1 {
		return &AxiomError{Kind: MissingExtrema, Low: ElementRef{Rank: -1}, Count: c}
	}
	if c := p.ElementCount(n); c != 1 {
		return &AxiomError{Kind: MissingExtrema, Low: ElementRef{Rank: n}, Count: c}
	}

	return nil
}

func (p *Polytope) checkChains() error {
	n := p.Rank()
	for r := -1; r <= n; r++ {
		for i, e := range p.level(r) {
			if r >= 0 && len(e.subs) == 0 {
				return &AxiomError{Kind: UnequalChainLength, Low: ElementRef{Rank: r, Index: i}}
			}
			if r < n && len(e.supers) == 0 {
				return &AxiomError{Kind: UnequalChainLength, Low: ElementRef{Rank: r, Index: i}}
			}
		}
	}

	return nil
}

// checkDiamonds verifies the diamond condition for every rank of G in 1..n.
func (p *Polytope) checkDiamonds(workers int) error {
	n := p.Rank()
	if n < 1 {
		return nil
	}

	found := make([]*AxiomError, n+1) // found[r] = first violation with rank(G) == r
	var g errgroup.Group
	g.SetLimit(workers)
	for r := 1; r <= n; r++ {
		r := r
		g.Go(func() error {
			found[r] = p.diamondsAt(r)
			return nil
		})
	}
	_ = g.Wait() // workers report through found, never through the group

	for r := 1; r <= n; r++ {
		if found[r] != nil {
			return found[r]
		}
	}

	return nil
}

// diamondsAt checks every G of rank r against every F of rank r-2 below it.
// count is reused across G; touched lists the entries to reset.
func (p *Polytope) diamondsAt(r int) *AxiomError {
	mid := p.level(r - 1)
	count := make([]int, p.ElementCount(r-2))
	touched := make([]int, 0, 16)
	for gi, g := range p.level(r) {
		for _, h := range g.subs {
			for _, f := range mid[h].subs {
				if count[f] == 0 {
					touched = append(touched, f)
				}
				count[f]++
			}
		}
		var bad *AxiomError
		for _, f := range touched {
			if count[f] != 2 && bad == nil {
				bad = &AxiomError{
					Kind:  DiamondViolation,
					Low:   ElementRef{Rank: r - 2, Index: f},
					High:  ElementRef{Rank: r, Index: gi},
					Count: count[f],
				}
			}
			count[f] = 0
		}
		touched = touched[:0]
		if bad != nil {
			return bad
		}
	}

	return nil
}

// checkConnected runs a BFS over proper elements (ranks 0..n-1) from vertex 0.
func (p *Polytope) checkConnected() error {
	n := p.Rank()
	seen := make([][]bool, n)
	for r := 0; r < n; r++ {
		seen[r] = make([]bool, p.ElementCount(r))
	}

	queue := []ElementRef{{Rank: 0, Index: 0}}
	seen[0][0] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		e := p.level(cur.Rank)[cur.Index]
		if cur.Rank > 0 {
			for _, s := range e.subs {
				if !seen[cur.Rank-1][s] {
					seen[cur.Rank-1][s] = true
					queue = append(queue, ElementRef{Rank: cur.Rank - 1, Index: s})
				}
			}
		}
		if cur.Rank < n-1 {
			for _, s := range e.supers {
				if !seen[cur.Rank+1][s] {
					seen[cur.Rank+1][s] = true
					queue = append(queue, ElementRef{Rank: cur.Rank + 1, Index: s})
				}
			}
		}
	}

	for r := 0; r < n; r++ {
		for i, ok := range seen[r] {
			if !ok {
				return &AxiomError{Kind: Disconnected, Low: ElementRef{Rank: r, Index: i}}
			}
		}
	}

	return nil
}
