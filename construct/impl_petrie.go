// SPDX-License-Identifier: MIT
// Package: polytope/construct
//
// impl_petrie.go — the Petrie dual of a polyhedron.
//
// A Petrie polygon turns alternately left and right along the edges of a
// polyhedron. In flag terms it is an orbit of <r0·r2, r1>: r0·r2 steps to
// the next edge across the adjacent face, r1 swaps which edge at the
// current vertex is taken. The Petrie dual keeps vertices and edges and
// replaces the faces by the Petrie polygons.

package construct

import (
	"sort"

	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/flags"
)

// petrieWords generate the flag orbits that form Petrie polygons.
var petrieWords = [][]int{{0, 2}, {1}}

func petrieDual(p *core.Polytope) (*core.Polytope, error) {
	orbits, err := flags.Orbits(p, petrieWords...)
	if err != nil {
		return nil, err
	}

	// One face per orbit: the distinct edges its flags pass through.
	faces := make([][]int, len(orbits))
	for o, orbit := range orbits {
		seen := make(map[int]bool)
		for _, f := range orbit {
			seen[f.At(1)] = true
		}
		edges := make([]int, 0, len(seen))
		for e := range seen {
			edges = append(edges, e)
		}
		sort.Ints(edges)
		faces[o] = edges
	}

	subs := make([][][]int, 5)
	subs[0] = [][]int{{}}
	for r := 0; r <= 1; r++ {
		list, _ := p.Elements(r)
		subs[r+1] = make([][]int, len(list))
		for i, e := range list {
			subs[r+1][i] = e.Subelements()
		}
	}
	subs[3] = faces
	subs[4] = [][]int{iota0(len(faces))}

	var opts []core.AssembleOption
	if p.IsCompound() {
		opts = append(opts, core.AsCompound())
	}

	return core.Assemble(subs, opts...)
}
