// Package flags defines the Flag type, sentinel errors and options for
// flag traversal: cancellation, enumeration limits and per-flag hooks.
package flags

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/katalvlaran/polytope/core"
)

var (
	// ErrPolytopeNil is returned when a nil *core.Polytope is passed in.
	ErrPolytopeNil = errors.New("flags: polytope is nil")

	// ErrInvalidChain indicates a chain that cannot be completed to a flag,
	// a flag of the wrong length, or a flag change without exactly one
	// candidate. Every valid polytope avoids it.
	ErrInvalidChain = errors.New("flags: invalid chain")

	// ErrStop may be returned by a Walk callback to end the walk early.
	// Walk then returns nil.
	ErrStop = errors.New("flags: stop walk")
)

// Flag is a maximal chain: one element index per rank from -1 to n.
// f[0] is the nullitope and f[n+1] the maximal element.
type Flag []int

// Rank returns the rank of the polytope the flag belongs to.
func (f Flag) Rank() int { return len(f) - 2 }

// At returns the index of the flag's element of the given rank.
func (f Flag) At(rank int) int { return f[rank+1] }

// Equal reports whether f and g pick the same element at every rank.
func (f Flag) Equal(g Flag) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if f[i] != g[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of f.
func (f Flag) Clone() Flag {
	return append(Flag(nil), f...)
}

// String formats the flag as its element indices from rank -1 to n.
func (f Flag) String() string {
	return fmt.Sprint([]int(f))
}

// key packs f into a map key.
func (f Flag) key() string {
	buf := make([]byte, 0, 2*len(f))
	for _, x := range f {
		buf = binary.AppendUvarint(buf, uint64(x))
	}

	return string(buf)
}

// Option configures optional behavior of Walk.
// Use with Walk(p, fn, opts...).
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for Walk.
type WalkOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per flag.
	Ctx context.Context

	// Limit, if non-negative, caps the number of flags delivered.
	// Default is -1 (no limit).
	Limit int
}

// DefaultOptions returns WalkOptions with a background context and no limit.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Ctx:   context.Background(),
		Limit: -1,
	}
}

// WithContext returns an Option that sets the Context for Walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit returns an Option that stops Walk after n flags.
// A limit of 0 delivers nothing.
func WithLimit(n int) Option {
	return func(o *WalkOptions) {
		o.Limit = n
	}
}

// checkPolytope rejects nil input with ErrPolytopeNil and a structure
// with an empty rank, which has no flag at all, with ErrInvalidChain.
// Inputs from core.Assemble are not validated, so this is the only
// structural assumption the engine makes.
func checkPolytope(method string, p *core.Polytope) error {
	if p == nil {
		return fmt.Errorf("flags: %s: %w", method, ErrPolytopeNil)
	}
	for r := -1; r <= p.Rank(); r++ {
		if p.ElementCount(r) == 0 {
			return fmt.Errorf("flags: %s: rank %d is empty: %w", method, r, ErrInvalidChain)
		}
	}

	return nil
}
