// SPDX-License-Identifier: MIT
// Package core defines the central Element, ElementList and Polytope types.
//
// A Polytope stores one ElementList per rank, from the nullitope (rank -1)
// up to the polytope itself (rank n). Incidences are kept as integer indices
// into the neighbouring ranks, never as pointers, so structural copies and
// reindexing are plain slice work and no reference cycles exist.
//
// A Polytope is immutable once built: every accessor returns copies (or
// value types with unexported slices), and every transformation produces a
// new instance. Concurrent readers may share one Polytope without locking.
package core

import "sort"

// Element is a single face of a polytope.
//
// subs holds indices into the ElementList one rank below, supers indices
// into the ElementList one rank above. Both are sorted ascending.
type Element struct {
	subs   []int
	supers []int
}

// Subelements returns a copy of the indices of the immediate subelements.
func (e Element) Subelements() []int {
	return append([]int(nil), e.subs...)
}

// Superelements returns a copy of the indices of the immediate superelements.
func (e Element) Superelements() []int {
	return append([]int(nil), e.supers...)
}

// NumSub returns the number of immediate subelements.
func (e Element) NumSub() int { return len(e.subs) }

// Sub returns the i-th immediate subelement index (0 <= i < NumSub()).
func (e Element) Sub(i int) int { return e.subs[i] }

// NumSuper returns the number of immediate superelements.
func (e Element) NumSuper() int { return len(e.supers) }

// Super returns the i-th immediate superelement index (0 <= i < NumSuper()).
func (e Element) Super(i int) int { return e.supers[i] }

// HasSub reports whether idx is an immediate subelement. O(log d).
func (e Element) HasSub(idx int) bool {
	k := sort.SearchInts(e.subs, idx)
	return k < len(e.subs) && e.subs[k] == idx
}

// HasSuper reports whether idx is an immediate superelement. O(log d).
func (e Element) HasSuper(idx int) bool {
	k := sort.SearchInts(e.supers, idx)
	return k < len(e.supers) && e.supers[k] == idx
}

// ElementList is the ordered sequence of elements of one rank.
// Order only fixes indices; it carries no meaning.
type ElementList []Element

// Len returns the number of elements in the list.
func (l ElementList) Len() int { return len(l) }

// Polytope is the abstract incidence structure.
//
// lists[r+1] holds the elements of rank r, for r = -1..n.
// compound marks structures built as compounds (shared extrema, several
// connected components); Validate does not require them to be connected.
type Polytope struct {
	lists    []ElementList
	compound bool
}

// level returns the ElementList of the given rank, or nil when out of range.
func (p *Polytope) level(rank int) ElementList {
	if rank < -1 || rank+1 >= len(p.lists) {
		return nil
	}

	return p.lists[rank+1]
}
