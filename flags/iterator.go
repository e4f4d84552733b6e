// Package flags: lazy depth-first flag enumeration.
//
// The Iterator walks maximal chains upward from the nullitope. At every
// rank it picks the next superelement of the element chosen one rank
// below; pos is the explicit stack of those choices, so no recursion and
// no full flag list is ever materialized.
//
// Flags come out in lexicographic order of their element indices.
//
// Complexity:
//
//   - Next: amortized O(n) per flag.
//   - Memory: O(n) for the current chain and the choice stack.
package flags

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polytope/core"
)

// Iterator yields the flags of a polytope one at a time.
//
// Usage:
//
//	it := flags.NewIterator(p)
//	for it.Next() {
//		f := it.Flag()
//	}
//	if err := it.Err(); err != nil { ... }
//
// An Iterator is not restartable and not safe for concurrent use; create
// a fresh one to start over.
type Iterator struct {
	levels  []core.ElementList // levels[L] = elements of rank L-1
	chain   []int              // chain[L] = chosen element at level L
	pos     []int              // pos[L] = position of chain[L] among the supers of chain[L-1]
	started bool
	done    bool
	err     error
}

// NewIterator returns an Iterator over the flags of p.
// A nil p yields an iterator whose Err is ErrPolytopeNil; a structure
// with an empty rank yields one whose Err is ErrInvalidChain.
func NewIterator(p *core.Polytope) *Iterator {
	if err := checkPolytope("NewIterator", p); err != nil {
		return &Iterator{done: true, err: err}
	}

	m := p.Rank() + 2
	levels := make([]core.ElementList, m)
	for L := range levels {
		levels[L], _ = p.Elements(L - 1) // always in range
	}

	return &Iterator{
		levels: levels,
		chain:  make([]int, m),
		pos:    make([]int, m),
	}
}

// Next advances to the next flag and reports whether one exists.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	// 1. First call: take the leftmost choice at every level.
	if !it.started {
		it.started = true
		it.chain[0] = 0

		return it.descend(1)
	}

	// 2. Backtrack to the deepest level with an untried superelement.
	for L := len(it.chain) - 1; L >= 1; L-- {
		below := it.levels[L-1][it.chain[L-1]]
		if it.pos[L]+1 < below.NumSuper() {
			it.pos[L]++
			it.chain[L] = below.Super(it.pos[L])

			return it.descend(L + 1)
		}
	}

	// 3. Stack exhausted.
	it.done = true

	return false
}

// descend fills levels from..m-1 with their first superelement.
func (it *Iterator) descend(from int) bool {
	for L := from; L < len(it.chain); L++ {
		below := it.levels[L-1][it.chain[L-1]]
		if below.NumSuper() == 0 {
			it.done = true
			it.err = fmt.Errorf("flags: element (%d:%d) has no superelement: %w", L-2, it.chain[L-1], ErrInvalidChain)

			return false
		}
		it.pos[L] = 0
		it.chain[L] = below.Super(0)
	}

	return true
}

// Flag returns a copy of the current flag. Valid only after Next
// returned true.
func (it *Iterator) Flag() Flag {
	return Flag(it.chain).Clone()
}

// Err returns the error that ended the iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Walk calls fn for every flag of p in iterator order.
//
// fn returning ErrStop ends the walk and Walk returns nil; any other
// error ends the walk and is returned wrapped. WithLimit caps the number
// of calls; WithContext allows cancellation between flags.
func Walk(p *core.Polytope, fn func(Flag) error, opts ...Option) error {
	// 1. Validate input
	if err := checkPolytope("Walk", p); err != nil {
		return err
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, opt := range opts {
		opt(&wopts)
	}

	// 3. Iterate
	it := NewIterator(p)
	delivered := 0
	for wopts.Limit < 0 || delivered < wopts.Limit {
		select {
		case <-wopts.Ctx.Done():
			return wopts.Ctx.Err()
		default:
		}
		if !it.Next() {
			return it.Err()
		}
		delivered++
		if err := fn(it.Flag()); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}

			return fmt.Errorf("flags: Walk callback on %v: %w", it.chain, err)
		}
	}

	return nil
}
