// SPDX-License-Identifier: MIT
// Package: polytope/construct
//
// impl_compound.go — compounds sharing their extrema.
//
// The proper elements of p come first at every rank, then those of q,
// shifted by the element counts of p. Vertices hang from the shared
// nullitope; the shared maximal element lists every facet of both.

package construct

import (
	"github.com/katalvlaran/polytope/core"
)

func compound(p, q *core.Polytope) (*core.Polytope, error) {
	n := p.Rank()
	subs := make([][][]int, n+2)
	subs[0] = [][]int{{}}
	for r := 0; r < n; r++ {
		pl, _ := p.Elements(r)
		ql, _ := q.Elements(r)
		shift := p.ElementCount(r - 1)
		level := make([][]int, 0, len(pl)+len(ql))
		for _, e := range pl {
			level = append(level, subsOf(r, e, 0))
		}
		for _, e := range ql {
			level = append(level, subsOf(r, e, shift))
		}
		subs[r+1] = level
	}
	subs[n+1] = [][]int{iota0(p.ElementCount(n-1) + q.ElementCount(n-1))}

	return core.Assemble(subs, core.AsCompound())
}

// subsOf returns the subelements of e (of rank r) shifted by shift.
// Vertices keep the single shared nullitope.
func subsOf(r int, e core.Element, shift int) []int {
	if r == 0 {
		return []int{0}
	}
	out := e.Subelements()
	for i := range out {
		out[i] += shift
	}

	return out
}
