// SPDX-License-Identifier: MIT
// Package core: assembling polytopes from incidence lists.
//
// Three entry points, from raw to convenient:
//   - Assemble: trusted fast path for constructors. Checks indices, derives
//     superelements, does NOT check the axioms.
//   - Builder / New: user-facing. Same layout as Assemble for ranks >= 0,
//     then Validate before the result is exposed.
//   - FromFaces: polyhedra from cyclic vertex lists of their faces.
//
// Complexity: O(S log S) where S is the total number of incidences.

package core

import (
	"fmt"
	"sort"
)

const (
	methodAssemble  = "Assemble"
	methodNew       = "New"
	methodBuild     = "Builder.Build"
	methodAdd       = "Builder.AddElement"
	methodFromFaces = "FromFaces"
)

// AssembleOption configures Assemble.
type AssembleOption func(*assembleConfig)

type assembleConfig struct {
	compound bool
}

// AsCompound marks the assembled structure as a compound: its proper
// elements may split into several connected components.
func AsCompound() AssembleOption {
	return func(c *assembleConfig) { c.compound = true }
}

// Assemble builds a Polytope from subelement lists without checking the
// polytope axioms.
//
// subs[r+1][i] lists the rank r-1 subelements of element i of rank r, for
// r = -1..n; the nullitope entry subs[0] must be a single empty list.
// Indices are range-checked (ErrOutOfRange) and duplicate entries rejected
// (ErrDuplicateIncidence). Input slices are copied; the caller keeps them.
//
// Constructors that derive a structure from valid inputs use Assemble and
// carry the proof obligation that the result is valid.
func Assemble(subs [][][]int, opts ...AssembleOption) (*Polytope, error) {
	cfg := assembleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(subs) == 0 {
		return nil, coreErrorf(methodAssemble, "no ranks given: %w", ErrMissingExtrema)
	}

	// 1) Copy subelements, sorted, checking ranges and duplicates.
	lists := make([]ElementList, len(subs))
	for level := range subs {
		lists[level] = make(ElementList, len(subs[level]))
		for i, raw := range subs[level] {
			if level == 0 && len(raw) > 0 {
				return nil, coreErrorf(methodAssemble, "nullitope %d has subelements: %w", i, ErrOutOfRange)
			}
			s := append([]int(nil), raw...)
			sort.Ints(s)
			for k, idx := range s {
				if idx < 0 || idx >= len(subs[level-1]) {
					return nil, coreErrorf(methodAssemble, "element (%d:%d) lists subelement %d: %w", level-1, i, idx, ErrOutOfRange)
				}
				if k > 0 && s[k-1] == idx {
					return nil, coreErrorf(methodAssemble, "element (%d:%d) lists %d twice: %w", level-1, i, idx, ErrDuplicateIncidence)
				}
			}
			lists[level][i].subs = s
		}
	}

	// 2) Derive superelements; iterating i ascending keeps them sorted.
	for level := 1; level < len(lists); level++ {
		for i := range lists[level] {
			for _, s := range lists[level][i].subs {
				lists[level-1][s].supers = append(lists[level-1][s].supers, i)
			}
		}
	}

	return &Polytope{lists: lists, compound: cfg.compound}, nil
}

// Builder accumulates elements of a polytope of fixed rank.
//
// Vertices need no subelements; every rank-0 element is attached to the
// nullitope automatically. The nullitope itself is implicit.
type Builder struct {
	rank int
	subs [][][]int // subs[r] for r = 0..rank
}

// NewBuilder returns a Builder for a polytope of the given rank (>= -1).
// Panics on rank < -1, which is a programmer error.
func NewBuilder(rank int) *Builder {
	if rank < -1 {
		panic("core: NewBuilder(rank<-1)")
	}

	return &Builder{rank: rank, subs: make([][][]int, rank+1)}
}

// AddVertices appends k vertices and returns the index of the first one.
func (b *Builder) AddVertices(k int) (int, error) {
	if b.rank < 0 {
		return 0, coreErrorf(methodAdd, "rank %d has no vertices: %w", b.rank, ErrOutOfRange)
	}
	first := len(b.subs[0])
	for i := 0; i < k; i++ {
		b.subs[0] = append(b.subs[0], nil)
	}

	return first, nil
}

// AddElement appends an element of rank 1..n bounded by the given
// subelements of rank-1 and returns its index within its rank.
// Subelement indices are checked when Build runs.
func (b *Builder) AddElement(rank int, subs ...int) (int, error) {
	if rank < 1 || rank > b.rank {
		return 0, coreErrorf(methodAdd, "rank %d outside 1..%d: %w", rank, b.rank, ErrOutOfRange)
	}
	b.subs[rank] = append(b.subs[rank], append([]int(nil), subs...))

	return len(b.subs[rank]) - 1, nil
}

// Build assembles and validates the polytope.
func (b *Builder) Build(opts ...ValidateOption) (*Polytope, error) {
	all := make([][][]int, b.rank+2)
	all[0] = [][]int{{}}
	for r := 0; r <= b.rank; r++ {
		if r == 0 {
			vs := make([][]int, len(b.subs[0]))
			for i := range vs {
				vs[i] = []int{0}
			}
			all[1] = vs
			continue
		}
		all[r+1] = b.subs[r]
	}

	p, err := Assemble(all)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if err = p.Validate(opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return p, nil
}

// New builds and validates a polytope from a vertex count and the
// boundaries of every higher rank.
//
// boundaries[d][i] lists the rank-d subelements of element i of rank d+1.
// The final rank must contain exactly one element, the polytope itself.
// With no boundaries, New(1) is the point.
//
// Example, a triangle:
//
//	core.New(3, [][]int{{0, 1}, {1, 2}, {2, 0}}, [][]int{{0, 1, 2}})
func New(vertices int, boundaries ...[][]int) (*Polytope, error) {
	return build(methodNew, vertices, boundaries)
}

// build feeds boundaries to a Builder and validates with opts, wrapping
// every error with method.
func build(method string, vertices int, boundaries [][][]int, opts ...ValidateOption) (*Polytope, error) {
	if vertices < 0 {
		return nil, coreErrorf(method, "negative vertex count %d: %w", vertices, ErrOutOfRange)
	}
	b := NewBuilder(len(boundaries))
	if _, err := b.AddVertices(vertices); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for d, level := range boundaries {
		for _, subs := range level {
			if _, err := b.AddElement(d+1, subs...); err != nil {
				return nil, fmt.Errorf("%s: %w", method, err)
			}
		}
	}

	p, err := b.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return p, nil
}

// FromFaces builds and validates a polyhedron (rank 3) from its faces,
// each given as a cyclic list of vertex indices. Edges are the distinct
// consecutive vertex pairs, numbered in order of first appearance.
// opts tune the validation as in Builder.Build.
func FromFaces(vertices int, faces [][]int, opts ...ValidateOption) (*Polytope, error) {
	type pair struct{ a, b int }

	edgeIndex := make(map[pair]int)
	var edges [][]int
	faceSubs := make([][]int, len(faces))
	for f, cycle := range faces {
		if len(cycle) < 2 {
			return nil, coreErrorf(methodFromFaces, "face %d has %d vertices: %w", f, len(cycle), ErrOutOfRange)
		}
		for k := range cycle {
			u, v := cycle[k], cycle[(k+1)%len(cycle)]
			if u < 0 || u >= vertices || v < 0 || v >= vertices {
				return nil, coreErrorf(methodFromFaces, "face %d uses vertex outside 0..%d: %w", f, vertices-1, ErrOutOfRange)
			}
			if u > v {
				u, v = v, u
			}
			e, ok := edgeIndex[pair{u, v}]
			if !ok {
				e = len(edges)
				edgeIndex[pair{u, v}] = e
				edges = append(edges, []int{u, v})
			}
			faceSubs[f] = append(faceSubs[f], e)
		}
	}

	top := make([]int, len(faces))
	for i := range top {
		top[i] = i
	}

	return build(methodFromFaces, vertices, [][][]int{edges, faceSubs, {top}}, opts...)
}

// Nullitope returns the rank -1 polytope: a single empty element.
func Nullitope() *Polytope {
	p, _ := Assemble([][][]int{{{}}})
	return p
}

// Point returns the rank 0 polytope: the nullitope below one vertex.
func Point() *Polytope {
	p, _ := Assemble([][][]int{{{}}, {{0}}})
	return p
}

// Segment returns the rank 1 polytope with two vertices.
func Segment() *Polytope {
	p, _ := Assemble([][][]int{{{}}, {{0}, {0}}, {{0, 1}}})
	return p
}
