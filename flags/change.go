// Package flags: flag changes and the properties they generate.
//
// For 0 <= i < n, the i-adjacent flag of f is the unique flag that
// differs from f exactly at rank i. The diamond condition guarantees it
// exists; Change returns ErrInvalidChain when it does not.
//
// IsOrientable, IsConnected and Orbits all run a BFS over the
// flag-adjacency graph cached by an Engine.
package flags

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polytope/core"
)

// Change returns the i-adjacent flag of f in p.
//
// Errors:
//   - ErrPolytopeNil    if p is nil.
//   - core.ErrOutOfRange if i is outside 0..n-1.
//   - ErrInvalidChain   if f has the wrong length or the change is not unique.
func Change(p *core.Polytope, f Flag, i int) (Flag, error) {
	if err := checkPolytope("Change", p); err != nil {
		return nil, err
	}
	n := p.Rank()
	if len(f) != n+2 {
		return nil, fmt.Errorf("flags: Change: flag of length %d for rank %d: %w", len(f), n, ErrInvalidChain)
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("flags: Change: rank %d outside 0..%d: %w", i, n-1, core.ErrOutOfRange)
	}

	// Candidates lie above f[i-1] and below f[i+1], other than f[i].
	below, err := p.Element(i-1, f.At(i-1))
	if err != nil {
		return nil, fmt.Errorf("flags: Change: %w", err)
	}
	above, err := p.Element(i+1, f.At(i+1))
	if err != nil {
		return nil, fmt.Errorf("flags: Change: %w", err)
	}

	found, hits := -1, 0
	for k := 0; k < below.NumSuper(); k++ {
		c := below.Super(k)
		if c != f.At(i) && above.HasSub(c) {
			found = c
			hits++
		}
	}
	if hits != 1 {
		return nil, fmt.Errorf("flags: Change: %d candidates at rank %d of %v: %w", hits, i, f, ErrInvalidChain)
	}

	g := f.Clone()
	g[i+1] = found

	return g, nil
}

// IsOrientable reports whether the flags of p split into two classes with
// every flag change crossing between them. Polytopes of rank <= 1 are
// orientable.
// Complexity: O(F · n).
func IsOrientable(p *core.Polytope) (bool, error) {
	if err := checkPolytope("IsOrientable", p); err != nil {
		return false, err
	}
	if p.Rank() <= 1 {
		return true, nil
	}
	adj, err := New(p).adjacency()
	if err != nil {
		return false, err
	}

	// 2-colour every component; colour 0 means unvisited.
	color := make([]int8, len(adj))
	queue := make([]int, 0, len(adj))
	for start := range adj {
		if color[start] != 0 {
			continue
		}
		color[start] = 1
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			k := queue[0]
			queue = queue[1:]
			for _, nb := range adj[k] {
				switch color[nb] {
				case 0:
					color[nb] = -color[k]
					queue = append(queue, nb)
				case color[k]:
					return false, nil
				}
			}
		}
	}

	return true, nil
}

// IsConnected reports whether every flag of p is reachable from every
// other through flag changes. Compounds are not flag-connected.
// Complexity: O(F · n).
func IsConnected(p *core.Polytope) (bool, error) {
	if err := checkPolytope("IsConnected", p); err != nil {
		return false, err
	}
	orbits, err := Orbits(p, allRanks(p.Rank())...)
	if err != nil {
		return false, err
	}

	return len(orbits) <= 1, nil
}

// Orbits partitions the flags of p into orbits of the group generated by
// the given words. A word is a sequence of ranks; applying it to a flag
// applies those flag changes left to right. An empty word is the identity.
//
// Orbits are ordered by their first flag; flags within an orbit are in
// iterator order.
//
// Example, the faces of the Petrie dual of a polyhedron:
//
//	flags.Orbits(p, []int{0, 2}, []int{1})
func Orbits(p *core.Polytope, words ...[]int) ([][]Flag, error) {
	if err := checkPolytope("Orbits", p); err != nil {
		return nil, err
	}
	e := New(p)
	all, err := e.All()
	if err != nil {
		return nil, err
	}
	n := p.Rank()
	for _, w := range words {
		for _, i := range w {
			if i < 0 || i >= n {
				return nil, fmt.Errorf("flags: Orbits: word %v uses rank %d outside 0..%d: %w", w, i, n-1, core.ErrOutOfRange)
			}
		}
	}
	adj, err := e.adjacency()
	if err != nil {
		return nil, err
	}

	// Label each flag with its orbit by BFS through the word images.
	orbit := make([]int, len(all))
	for k := range orbit {
		orbit[k] = -1
	}
	var members [][]int
	for start := range all {
		if orbit[start] >= 0 {
			continue
		}
		id := len(members)
		orbit[start] = id
		queue := []int{start}
		cur := []int{start}
		for len(queue) > 0 {
			k := queue[0]
			queue = queue[1:]
			for _, w := range words {
				img := k
				for _, i := range w {
					img = adj[img][i]
				}
				if orbit[img] < 0 {
					orbit[img] = id
					queue = append(queue, img)
					cur = append(cur, img)
				}
			}
		}
		sort.Ints(cur)
		members = append(members, cur)
	}

	out := make([][]Flag, len(members))
	for o, ks := range members {
		out[o] = make([]Flag, len(ks))
		for j, k := range ks {
			out[o][j] = all[k].Clone()
		}
	}

	return out, nil
}

// allRanks returns one single-letter word per rank 0..n-1.
func allRanks(n int) [][]int {
	words := make([][]int, 0, max(n, 0))
	for i := 0; i < n; i++ {
		words = append(words, []int{i})
	}

	return words
}
