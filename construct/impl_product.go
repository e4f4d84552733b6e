// SPDX-License-Identifier: MIT
// Package: polytope/construct
//
// impl_product.go — the shared engine behind Join, Duoprism and Tegum.
//
// All three products take pairs (F, G) of elements of P and Q and order
// them componentwise: (F', G') <= (F, G) iff F' <= F and G' <= G. They
// differ only in which ranks of each operand take part, the rank shift,
// and whether a new nullitope or a new maximal element is added:
//
//	product   | F ranks    | G ranks    | rank(F,G)    | added
//	----------+------------+------------+--------------+-------------
//	Join      | -1 .. m    | -1 .. k    | rF + rG + 1  | nothing
//	Duoprism  |  0 .. m    |  0 .. k    | rF + rG      | new nullitope
//	Tegum     | -1 .. m-1  | -1 .. k-1  | rF + rG + 1  | new maximum
//
// Indexing: within one result rank, pairs are grouped in blocks by rG
// ascending; inside a block the index is offset + iF*count(Q, rG) + iG.
// So base elements of P come first, and vertex i of P paired with vertex
// j of Q lands at i*count(Q,0) + j.
//
// Complexity: O(|P|·|Q|) elements, O(I_P·|Q| + |P|·I_Q) incidences.

package construct

import (
	"github.com/katalvlaran/polytope/core"
)

// productShape selects one of the three pair products.
type productShape struct {
	pLo, pHi int // ranks of F taking part
	qLo, qHi int // ranks of G taking part
	shift    int // rank(F, G) = rF + rG + shift
	newMin   bool
	newMax   bool
}

func joinShape(m, k int) productShape {
	return productShape{pLo: -1, pHi: m, qLo: -1, qHi: k, shift: 1}
}

func duoprismShape(m, k int) productShape {
	return productShape{pLo: 0, pHi: m, qLo: 0, qHi: k, newMin: true}
}

func tegumShape(m, k int) productShape {
	return productShape{pLo: -1, pHi: m - 1, qLo: -1, qHi: k - 1, shift: 1, newMax: true}
}

// product assembles the pair product of p and q described by s.
// Ranks are assumed checked by the caller.
func product(p, q *core.Polytope, s productShape, opts ...core.AssembleOption) (*core.Polytope, error) {
	// 1) Per-rank element lists of both operands.
	pl := ranksOf(p, s.pLo, s.pHi)
	ql := ranksOf(q, s.qLo, s.qHi)

	hi := s.pHi + s.qHi + s.shift
	top := hi
	if s.newMax {
		top++
	}

	// 2) Block offsets: offset[rF-pLo][rG-qLo] within result rank rF+rG+shift.
	offset := make([][]int, s.pHi-s.pLo+1)
	for a := range offset {
		offset[a] = make([]int, s.qHi-s.qLo+1)
	}
	size := make([]int, top+2) // size[R+1] = elements of result rank R
	if s.newMin {
		size[0] = 1
	}
	for rG := s.qLo; rG <= s.qHi; rG++ {
		for rF := s.pLo; rF <= s.pHi; rF++ {
			R := rF + rG + s.shift
			offset[rF-s.pLo][rG-s.qLo] = size[R+1]
			size[R+1] += len(pl[rF-s.pLo]) * len(ql[rG-s.qLo])
		}
	}
	if s.newMax {
		size[top+1] = 1
	}

	// 3) Subelements of every pair.
	subs := make([][][]int, top+2)
	for L := range subs {
		subs[L] = make([][]int, size[L])
	}
	if s.newMin {
		subs[0][0] = []int{}
	}
	for rG := s.qLo; rG <= s.qHi; rG++ {
		cq := len(ql[rG-s.qLo])
		for rF := s.pLo; rF <= s.pHi; rF++ {
			R := rF + rG + s.shift
			base := offset[rF-s.pLo][rG-s.qLo]
			for iF, F := range pl[rF-s.pLo] {
				for iG, G := range ql[rG-s.qLo] {
					out := make([]int, 0, F.NumSub()+G.NumSub())
					if rF-1 >= s.pLo {
						below := offset[rF-1-s.pLo][rG-s.qLo]
						for k := 0; k < F.NumSub(); k++ {
							out = append(out, below+F.Sub(k)*cq+iG)
						}
					}
					if rG-1 >= s.qLo {
						below := offset[rF-s.pLo][rG-1-s.qLo]
						cqb := len(ql[rG-1-s.qLo])
						for k := 0; k < G.NumSub(); k++ {
							out = append(out, below+iF*cqb+G.Sub(k))
						}
					}
					if len(out) == 0 && s.newMin {
						out = append(out, 0)
					}
					subs[R+1][base+iF*cq+iG] = out
				}
			}
		}
	}
	if s.newMax {
		subs[top+1][0] = iota0(size[hi+1])
	}

	return core.Assemble(subs, opts...)
}

// ranksOf returns the element lists of p for ranks lo..hi.
func ranksOf(p *core.Polytope, lo, hi int) []core.ElementList {
	out := make([]core.ElementList, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out[r-lo], _ = p.Elements(r) // lo..hi lies within -1..n
	}

	return out
}

// iota0 returns 0, 1, ..., n-1.
func iota0(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
