// SPDX-License-Identifier: MIT
// Package core: sections, facets and vertex figures.
//
// The section F/G of two incident elements F <= G is the sub-poset of all
// elements E with F <= E <= G. F becomes the new nullitope and G the new
// maximal element, so the section has rank rank(G) - rank(F) - 1.
// Elements keep their relative order within each rank.
//
// Complexity: O(size of the down-set of G times its incidences).

package core

const (
	methodSection      = "Section"
	methodVertexFigure = "VertexFigure"
	methodFacet        = "Facet"
)

// Section returns the section between element (lowRank, low) and element
// (highRank, high). Bad ranks or indices return ErrOutOfRange; a low
// element that is not below the high one returns ErrNotIncident.
//
// The result is marked compound only when it spans the whole polytope.
func (p *Polytope) Section(lowRank, low, highRank, high int) (*Polytope, error) {
	if _, err := p.Element(lowRank, low); err != nil {
		return nil, coreErrorf(methodSection, "low: %w", err)
	}
	if _, err := p.Element(highRank, high); err != nil {
		return nil, coreErrorf(methodSection, "high: %w", err)
	}
	if lowRank > highRank {
		return nil, coreErrorf(methodSection, "(%d:%d) above (%d:%d): %w", lowRank, low, highRank, high, ErrNotIncident)
	}

	// 1) Everything below high, then keep what lies above low.
	down := p.downSet(highRank, high, lowRank)
	if !down[0][low] {
		return nil, coreErrorf(methodSection, "(%d:%d) not below (%d:%d): %w", lowRank, low, highRank, high, ErrNotIncident)
	}

	span := highRank - lowRank + 1
	// keep[k] lists old indices at rank lowRank+k, ascending; remap[k] inverts it.
	keep := make([][]int, span)
	remap := make([]map[int]int, span)
	keep[0] = []int{low}
	remap[0] = map[int]int{low: 0}
	for k := 1; k < span; k++ {
		l := p.level(lowRank + k)
		remap[k] = make(map[int]int)
		for _, idx := range sortedKeys(down[k]) {
			for _, s := range l[idx].subs {
				if _, ok := remap[k-1][s]; ok {
					remap[k][idx] = len(keep[k])
					keep[k] = append(keep[k], idx)
					break
				}
			}
		}
	}

	// 2) Rewrite subelements in the new indexing.
	subs := make([][][]int, span)
	subs[0] = [][]int{{}}
	for k := 1; k < span; k++ {
		l := p.level(lowRank + k)
		subs[k] = make([][]int, len(keep[k]))
		for i, idx := range keep[k] {
			out := make([]int, 0, len(l[idx].subs))
			for _, s := range l[idx].subs {
				if ns, ok := remap[k-1][s]; ok {
					out = append(out, ns)
				}
			}
			subs[k][i] = out
		}
	}

	var opts []AssembleOption
	if p.compound && lowRank == -1 && highRank == p.Rank() {
		opts = append(opts, AsCompound())
	}

	return Assemble(subs, opts...)
}

// Facet returns the facet idx as a polytope of rank n-1: the section
// between the nullitope and facet idx.
func (p *Polytope) Facet(idx int) (*Polytope, error) {
	n := p.Rank()
	if n < 0 {
		return nil, coreErrorf(methodFacet, "nullitope has no facets: %w", ErrOutOfRange)
	}
	f, err := p.Section(-1, 0, n-1, idx)
	if err != nil {
		return nil, coreErrorf(methodFacet, "%w", err)
	}

	return f, nil
}

// VertexFigure returns the section between vertex v and the maximal
// element: a polytope of rank n-1 whose vertices are the edges at v.
// The section is returned as is, not dualized; it is isomorphic to
// Dual(Dual(p).Facet(v)), and Dual of the result gives the dual figure.
func (p *Polytope) VertexFigure(v int) (*Polytope, error) {
	n := p.Rank()
	if n < 0 {
		return nil, coreErrorf(methodVertexFigure, "nullitope has no vertices: %w", ErrOutOfRange)
	}
	f, err := p.Section(0, v, n, 0)
	if err != nil {
		return nil, coreErrorf(methodVertexFigure, "%w", err)
	}

	return f, nil
}
