// SPDX-License-Identifier: MIT
// Package core: read-only incidence queries.
//
// All queries are O(1) or linear in the size of the answer, take no locks,
// and never mutate the receiver.

package core

import "sort"

const (
	methodElement  = "Element"
	methodElements = "Elements"
	methodSubs     = "Subelements"
	methodSupers   = "Superelements"
	methodVertices = "Vertices"
)

// Rank returns n, the rank of the polytope (-1 for the nullitope).
func (p *Polytope) Rank() int {
	return len(p.lists) - 2
}

// ElementCount returns the number of elements of the given rank,
// or 0 for a rank outside -1..n.
func (p *Polytope) ElementCount(rank int) int {
	return len(p.level(rank))
}

// Counts returns the element counts per rank; index 0 is rank -1.
func (p *Polytope) Counts() []int {
	out := make([]int, len(p.lists))
	for i, l := range p.lists {
		out[i] = len(l)
	}

	return out
}

// IsCompound reports whether p was built as a compound.
func (p *Polytope) IsCompound() bool {
	return p.compound
}

// Element returns the element at (rank, idx).
func (p *Polytope) Element(rank, idx int) (Element, error) {
	l := p.level(rank)
	if l == nil || idx < 0 || idx >= len(l) {
		return Element{}, coreErrorf(methodElement, "(%d:%d) in rank %d polytope: %w", rank, idx, p.Rank(), ErrOutOfRange)
	}

	return l[idx], nil
}

// Elements returns the ElementList of the given rank. The list is a
// shallow copy; its elements expose incidences only through copies.
func (p *Polytope) Elements(rank int) (ElementList, error) {
	l := p.level(rank)
	if l == nil {
		return nil, coreErrorf(methodElements, "rank %d outside -1..%d: %w", rank, p.Rank(), ErrOutOfRange)
	}

	return append(ElementList(nil), l...), nil
}

// Subelements returns the indices (rank-1) of the immediate subelements
// of element (rank, idx).
func (p *Polytope) Subelements(rank, idx int) ([]int, error) {
	e, err := p.Element(rank, idx)
	if err != nil {
		return nil, coreErrorf(methodSubs, "%w", err)
	}

	return e.Subelements(), nil
}

// Superelements returns the indices (rank+1) of the immediate
// superelements of element (rank, idx).
func (p *Polytope) Superelements(rank, idx int) ([]int, error) {
	e, err := p.Element(rank, idx)
	if err != nil {
		return nil, coreErrorf(methodSupers, "%w", err)
	}

	return e.Superelements(), nil
}

// Incident reports whether element (lowRank, low) lies below (or is)
// element (highRank, high). Out-of-range arguments report false.
func (p *Polytope) Incident(lowRank, low, highRank, high int) bool {
	if _, err := p.Element(lowRank, low); err != nil {
		return false
	}
	if _, err := p.Element(highRank, high); err != nil {
		return false
	}
	if lowRank > highRank {
		return false
	}
	down := p.downSet(highRank, high, lowRank)

	return down[0][low]
}

// Vertices returns the sorted vertex indices below element (rank, idx).
// The nullitope has none; a vertex has itself.
func (p *Polytope) Vertices(rank, idx int) ([]int, error) {
	if _, err := p.Element(rank, idx); err != nil {
		return nil, coreErrorf(methodVertices, "%w", err)
	}
	if rank < 0 {
		return []int{}, nil
	}
	down := p.downSet(rank, idx, 0)

	return sortedKeys(down[0]), nil
}

// Equal reports whether p and q have identical incidences under identical
// indexing. It is stricter than isomorphism (see flags.Isomorphic).
func (p *Polytope) Equal(q *Polytope) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.lists) != len(q.lists) || p.compound != q.compound {
		return false
	}
	for r := range p.lists {
		if len(p.lists[r]) != len(q.lists[r]) {
			return false
		}
		for i := range p.lists[r] {
			if !equalInts(p.lists[r][i].subs, q.lists[r][i].subs) {
				return false
			}
		}
	}

	return true
}

// downSet collects every element below (rank, idx) down to rank floor,
// inclusive. The result is indexed by rank-floor.
// Complexity: O(size of the down-set times its incidences).
func (p *Polytope) downSet(rank, idx, floor int) []map[int]bool {
	out := make([]map[int]bool, rank-floor+1)
	for i := range out {
		out[i] = make(map[int]bool)
	}
	out[rank-floor][idx] = true
	for r := rank; r > floor; r-- {
		l := p.level(r)
		for e := range out[r-floor] {
			for _, s := range l[e].subs {
				out[r-1-floor][s] = true
			}
		}
	}

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
