// Package flags: memoized flag queries.
//
// An Engine owns three lazily built caches over one immutable polytope:
//
//   - count: the number of flags, by a chain-count dynamic programme;
//   - all/index: the enumerated flags and their positions;
//   - adj: adj[k][i] = position of the i-adjacent flag of flag k.
//
// Each cache is built once under sync.Once, so an Engine is safe for
// concurrent use and repeated queries cost nothing.
package flags

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/polytope/core"
)

// Engine answers flag queries about one polytope and caches the results.
type Engine struct {
	p *core.Polytope

	countOnce sync.Once
	count     int

	allOnce sync.Once
	all     []Flag
	index   map[string]int
	allErr  error

	adjOnce sync.Once
	adj     [][]int
	adjErr  error
}

// New returns an Engine for p. Nothing is computed until asked for.
// Panics on nil p, which is a programmer error.
func New(p *core.Polytope) *Engine {
	if p == nil {
		panic("flags: New(nil)")
	}

	return &Engine{p: p}
}

// Polytope returns the polytope the engine answers for.
func (e *Engine) Polytope() *core.Polytope { return e.p }

// Count returns the number of flags without enumerating them. A structure
// with an empty rank has none.
//
// ways[i] counts the chains from the nullitope to element i of the
// current rank; the flag count is ways at the maximal element.
// Complexity: O(I).
func (e *Engine) Count() int {
	e.countOnce.Do(func() {
		ways := []int{1}
		for r := 0; r <= e.p.Rank(); r++ {
			list, _ := e.p.Elements(r)
			next := make([]int, len(list))
			for i, el := range list {
				for k := 0; k < el.NumSub(); k++ {
					next[i] += ways[el.Sub(k)]
				}
			}
			ways = next
		}
		// An empty top rank has no flags.
		if len(ways) > 0 {
			e.count = ways[0]
		}
	})

	return e.count
}

// All returns every flag in iterator order. The slice is shared and must
// not be modified.
func (e *Engine) All() ([]Flag, error) {
	e.allOnce.Do(func() {
		it := NewIterator(e.p)
		e.index = make(map[string]int)
		for it.Next() {
			f := it.Flag()
			e.index[f.key()] = len(e.all)
			e.all = append(e.all, f)
		}
		e.allErr = it.Err()
	})

	return e.all, e.allErr
}

// Index returns the position of f in All, or false if f is not a flag.
func (e *Engine) Index(f Flag) (int, bool) {
	if _, err := e.All(); err != nil {
		return 0, false
	}
	k, ok := e.index[f.key()]

	return k, ok
}

// Adjacent returns the position in All of the i-adjacent flag of flag k.
func (e *Engine) Adjacent(k, i int) (int, error) {
	adj, err := e.adjacency()
	if err != nil {
		return 0, err
	}
	if k < 0 || k >= len(adj) {
		return 0, fmt.Errorf("flags: Adjacent: flag %d of %d: %w", k, len(adj), core.ErrOutOfRange)
	}
	if i < 0 || i >= len(adj[k]) {
		return 0, fmt.Errorf("flags: Adjacent: rank %d outside 0..%d: %w", i, e.p.Rank()-1, core.ErrOutOfRange)
	}

	return adj[k][i], nil
}

// adjacency builds the flag-adjacency table once.
// Complexity: O(F · n · d) where d bounds the element degrees.
func (e *Engine) adjacency() ([][]int, error) {
	e.adjOnce.Do(func() {
		all, err := e.All()
		if err != nil {
			e.adjErr = err
			return
		}
		n := e.p.Rank()
		e.adj = make([][]int, len(all))
		for k, f := range all {
			row := make([]int, max(n, 0))
			for i := 0; i < n; i++ {
				g, err := Change(e.p, f, i)
				if err != nil {
					e.adjErr = err
					return
				}
				row[i] = e.index[g.key()]
			}
			e.adj[k] = row
		}
	})

	return e.adj, e.adjErr
}

// Count returns the number of flags of p.
func Count(p *core.Polytope) (int, error) {
	if err := checkPolytope("Count", p); err != nil {
		return 0, err
	}

	return New(p).Count(), nil
}
