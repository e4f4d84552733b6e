// SPDX-License-Identifier: MIT
// Package: polytope/construct
//
// impl_antiprism.go — the abstract antiprism.
//
// The antiprism of an n-polytope P has one element per interval F <= G of
// P, of rank rF - rG + n, ordered by
//
//	(F, G) <= (F', G')  iff  F <= F' and G' <= G,
//
// plus a new maximal element above all intervals (F, F). The immediate
// subelements of (F, G) are (F', G) for F' a subelement of F and (F, G')
// for G' a superelement of G.
//
// Vertices are (v, P), the base copy of P, followed by (∅, facet), the
// dual base. The antiprism of a triangle is the octahedron.
//
// Complexity: O(Σ interval count) elements; intervals are enumerated from
// the down-set of every G.

package construct

import (
	"sort"

	"github.com/katalvlaran/polytope/core"
)

// interval is one element (F, G) of the antiprism.
type interval struct {
	rF, iF, rG, iG int
}

func antiprism(p *core.Polytope) (*core.Polytope, error) {
	n := p.Rank()
	lists := ranksOf(p, -1, n)
	elem := func(r, i int) core.Element { return lists[r+1][i] }

	// 1) Down-sets: down[rG+1][iG][rF+1] = sorted F of rank rF below G.
	down := make([][][][]int, n+2)
	for rG := -1; rG <= n; rG++ {
		down[rG+1] = make([][][]int, len(lists[rG+1]))
		for iG := range lists[rG+1] {
			d := make([][]int, rG+2)
			d[rG+1] = []int{iG}
			for rF := rG - 1; rF >= -1; rF-- {
				seen := make(map[int]bool)
				for _, h := range d[rF+2] {
					e := elem(rF+1, h)
					for k := 0; k < e.NumSub(); k++ {
						seen[e.Sub(k)] = true
					}
				}
				d[rF+1] = sortedSet(seen)
			}
			down[rG+1][iG] = d
		}
	}

	// 2) Enumerate intervals per result rank, grouped by rG descending.
	levels := make([][]interval, n+3) // levels[R+1], R = -1..n+1
	index := make(map[interval]int)
	for R := -1; R <= n; R++ {
		for rG := n; rG >= -1; rG-- {
			rF := R - n + rG
			if rF < -1 || rF > rG {
				continue
			}
			for iG := range lists[rG+1] {
				for _, iF := range down[rG+1][iG][rF+1] {
					iv := interval{rF: rF, iF: iF, rG: rG, iG: iG}
					index[iv] = len(levels[R+1])
					levels[R+1] = append(levels[R+1], iv)
				}
			}
		}
	}

	// 3) Subelements.
	subs := make([][][]int, n+3)
	for R := -1; R <= n; R++ {
		subs[R+1] = make([][]int, len(levels[R+1]))
		for k, iv := range levels[R+1] {
			out := []int{}
			if iv.rF >= 0 {
				f := elem(iv.rF, iv.iF)
				for j := 0; j < f.NumSub(); j++ {
					out = append(out, index[interval{rF: iv.rF - 1, iF: f.Sub(j), rG: iv.rG, iG: iv.iG}])
				}
			}
			if iv.rG < n {
				g := elem(iv.rG, iv.iG)
				for j := 0; j < g.NumSuper(); j++ {
					out = append(out, index[interval{rF: iv.rF, iF: iv.iF, rG: iv.rG + 1, iG: g.Super(j)}])
				}
			}
			subs[R+1][k] = out
		}
	}
	subs[n+2] = [][]int{iota0(len(levels[n+1]))}

	return core.Assemble(subs)
}

func sortedSet(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
