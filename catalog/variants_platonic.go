// SPDX-License-Identifier: MIT
// Package: polytope/catalog
//
// variants_platonic.go — canonical data for the five Platonic solids.
//
// Design:
//   • Tetrahedron, cube and octahedron are the rank 3 simplex, hypercube
//     and orthoplex; their vertex orders come from construct.
//   • The icosahedron is listed by faces over a fixed labelling: pole 0,
//     upper ring 1..5, lower ring 6..10, pole 11. Upper vertex i touches
//     lower vertices i+5 and i+6 (6 after 10).
//   • The dodecahedron is the dual of the icosahedron: vertex f of the
//     dodecahedron is face f of icosahedronFaces.

package catalog

import "strings"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  F=4
	Cube                             // V=8,  E=12, F=6
	Octahedron                       // V=6,  E=12, F=8
	Dodecahedron                     // V=20, E=30, F=12
	Icosahedron                      // V=12, E=30, F=20
)

// String returns the lower-case name Lookup accepts.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return "unknown"
	}
}

// PlatonicNames lists the solids in enum order.
var PlatonicNames = []PlatonicName{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}

// ParsePlatonic resolves a case-insensitive solid name.
func ParsePlatonic(name string) (PlatonicName, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range PlatonicNames {
		if p.String() == name {
			return p, nil
		}
	}

	return 0, catalogErrorf(MethodPlatonic, "%q: %w", name, ErrUnknownName)
}

// icosahedronVertices is the vertex count of the labelling above.
const icosahedronVertices = 12

// icosahedronFaces are the 20 triangles: upper cap, upper band, lower
// band, lower cap.
var icosahedronFaces = [][]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
	{1, 2, 7}, {2, 3, 8}, {3, 4, 9}, {4, 5, 10}, {5, 1, 6},
	{1, 6, 7}, {2, 7, 8}, {3, 8, 9}, {4, 9, 10}, {5, 10, 6},
	{11, 6, 7}, {11, 7, 8}, {11, 8, 9}, {11, 9, 10}, {11, 10, 6},
}
