// Package flags: isomorphism of abstract polytopes.
//
// A polytope isomorphism is determined by the image of one flag: it must
// commute with every flag change. Isomorphic fixes a base flag of p, tries
// each flag of q as its image, and propagates the map through flag
// changes by BFS, rejecting on the first conflict. Flag-disconnected
// inputs (compounds) are matched one flag component at a time.
//
// Complexity: O(F² · n) worst case, usually O(F · n) for symmetric inputs.
package flags

import (
	"github.com/katalvlaran/polytope/core"
)

// Isomorphic reports whether p and q are isomorphic as posets.
func Isomorphic(p, q *core.Polytope) (bool, error) {
	if err := checkPolytope("Isomorphic", p); err != nil {
		return false, err
	}
	if err := checkPolytope("Isomorphic", q); err != nil {
		return false, err
	}

	// 1. Cheap invariants first.
	if !equalCounts(p.Counts(), q.Counts()) {
		return false, nil
	}
	ep, eq := New(p), New(q)
	if ep.Count() != eq.Count() {
		return false, nil
	}
	if p.Rank() <= 0 {
		return true, nil
	}

	adjP, err := ep.adjacency()
	if err != nil {
		return false, err
	}
	adjQ, err := eq.adjacency()
	if err != nil {
		return false, err
	}

	// 2. Map each flag component of p onto an unused component of q.
	fwd := filled(len(adjP), -1)
	used := make([]bool, len(adjQ))
	for base := range adjP {
		if fwd[base] >= 0 {
			continue
		}
		matched := false
		for img := range adjQ {
			if used[img] {
				continue
			}
			if m, ok := extend(adjP, adjQ, base, img); ok {
				for k, v := range m {
					fwd[k] = v
					used[v] = true
				}
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}

	return true, nil
}

// extend grows the map base -> img through flag changes. It returns the
// map restricted to base's component, or false on a conflict.
func extend(adjP, adjQ [][]int, base, img int) (map[int]int, bool) {
	fwd := map[int]int{base: img}
	back := map[int]int{img: base}
	queue := []int{base}
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		for i, pk := range adjP[k] {
			qk := adjQ[fwd[k]][i]
			if got, ok := fwd[pk]; ok {
				if got != qk {
					return nil, false
				}
				continue
			}
			if _, taken := back[qk]; taken {
				return nil, false
			}
			fwd[pk] = qk
			back[qk] = pk
			queue = append(queue, pk)
		}
	}

	return fwd, true
}

func equalCounts(a, b []int) bool {
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

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
