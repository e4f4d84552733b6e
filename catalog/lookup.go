// SPDX-License-Identifier: MIT
// Package: polytope/catalog
//
// lookup.go — textual names for the catalog.
//
// Grammar (case-insensitive, surrounding blanks ignored):
//
//	name    = fixed | family ":" integer
//	fixed   = "nullitope" | "point" | "segment" | "triangle" | "square"
//	        | "tetrahedron" | "cube" | "octahedron" | "dodecahedron" | "icosahedron"
//	family  = "polygon" | "simplex" | "hypercube" | "orthoplex"
//
// A fixed name without a concrete realization ("nullitope") resolves only
// through Lookup.

package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
)

type entry struct {
	abs func() (*core.Polytope, error)
	con func() (*concrete.Polytope, error)
}

type family struct {
	abs func(int) (*core.Polytope, error)
	con func(int) (*concrete.Polytope, error)
}

var fixed = map[string]entry{
	"nullitope": {abs: func() (*core.Polytope, error) { return core.Nullitope(), nil }},
	"point":     {abs: func() (*core.Polytope, error) { return Point(), nil }, con: concretePoint},
	"segment": {
		abs: func() (*core.Polytope, error) { return Segment(), nil },
		con: func() (*concrete.Polytope, error) { return HypercubeCoords(1) },
	},
	"triangle": {
		abs: func() (*core.Polytope, error) { return Polygon(3) },
		con: func() (*concrete.Polytope, error) { return RegularPolygon(3) },
	},
	"square": {
		abs: func() (*core.Polytope, error) { return Polygon(4) },
		con: func() (*concrete.Polytope, error) { return RegularPolygon(4) },
	},
}

var families = map[string]family{
	"polygon":   {abs: Polygon, con: RegularPolygon},
	"simplex":   {abs: Simplex, con: SimplexCoords},
	"hypercube": {abs: Hypercube, con: HypercubeCoords},
	"orthoplex": {abs: Orthoplex, con: OrthoplexCoords},
}

func init() {
	for _, p := range PlatonicNames {
		p := p
		fixed[p.String()] = entry{
			abs: func() (*core.Polytope, error) { return Platonic(p) },
			con: func() (*concrete.Polytope, error) { return ConcretePlatonic(p) },
		}
	}
}

// Names lists the accepted names, fixed names first, then the family
// patterns, each group sorted.
func Names() []string {
	names := make([]string, 0, len(fixed))
	for n := range fixed {
		names = append(names, n)
	}
	sort.Strings(names)
	patterns := make([]string, 0, len(families))
	for n := range families {
		patterns = append(patterns, n+nameSeparator+"<n>")
	}
	sort.Strings(patterns)

	return append(names, patterns...)
}

// Lookup resolves name to an abstract polytope.
func Lookup(name string) (*core.Polytope, error) {
	e, f, n, err := resolve(name)
	if err != nil {
		return nil, err
	}
	var p *core.Polytope
	if f != nil {
		p, err = f.abs(n)
	} else {
		p, err = e.abs()
	}
	if err != nil {
		return nil, catalogErrorf(MethodLookup, "%q: %w", name, err)
	}

	return p, nil
}

// LookupConcrete resolves name to a polytope with regular coordinates.
func LookupConcrete(name string) (*concrete.Polytope, error) {
	e, f, n, err := resolve(name)
	if err != nil {
		return nil, err
	}
	var p *concrete.Polytope
	switch {
	case f != nil:
		p, err = f.con(n)
	case e.con != nil:
		p, err = e.con()
	default:
		return nil, catalogErrorf(MethodLookup, "%q has no coordinates: %w", name, ErrUnknownName)
	}
	if err != nil {
		return nil, catalogErrorf(MethodLookup, "%q: %w", name, err)
	}

	return p, nil
}

// resolve splits name into a fixed entry, or a family and its parameter.
func resolve(name string) (entry, *family, int, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	base, arg, hasArg := strings.Cut(key, nameSeparator)
	if !hasArg {
		if e, ok := fixed[key]; ok {
			return e, nil, 0, nil
		}
		return entry{}, nil, 0, catalogErrorf(MethodLookup, "%q: %w", name, ErrUnknownName)
	}
	f, ok := families[base]
	if !ok {
		return entry{}, nil, 0, catalogErrorf(MethodLookup, "%q: %w", name, ErrUnknownName)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return entry{}, nil, 0, catalogErrorf(MethodLookup, "%q: %v: %w", name, err, ErrUnknownName)
	}

	return entry{}, &f, n, nil
}
