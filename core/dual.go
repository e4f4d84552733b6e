// SPDX-License-Identifier: MIT
// Package core: the abstract dual.

package core

// Dual returns the dual of p: rank r becomes rank n-1-r and every element
// swaps its sub- and superelements. Indices within a rank are preserved, so
// Dual(Dual(p)).Equal(p) holds. The compound mark is kept.
//
// Dual never fails: the axioms are symmetric under order reversal.
// Complexity: O(V+I).
func Dual(p *Polytope) *Polytope {
	m := len(p.lists)
	lists := make([]ElementList, m)
	for k := range lists {
		src := p.lists[m-1-k]
		dst := make(ElementList, len(src))
		for i, e := range src {
			dst[i] = Element{
				subs:   append([]int{}, e.supers...),
				supers: append([]int{}, e.subs...),
			}
		}
		lists[k] = dst
	}

	return &Polytope{lists: lists, compound: p.compound}
}
