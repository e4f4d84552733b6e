// SPDX-License-Identifier: MIT
// Package: polytope/catalog
//
// impl_platonic.go — Platonic(name) and ConcretePlatonic(name).
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrUnknownName.
//   • Tetrahedron, cube and octahedron delegate to the rank 3 families, so
//     Platonic(Cube) equals Hypercube(3).
//   • ConcretePlatonic centres every solid at the origin. Tetrahedron and
//     cube have edge length EdgeLength, the octahedron has vertices ±e_k,
//     the icosahedron is inscribed in the unit sphere and the dodecahedron
//     is its polar reciprocal.

package catalog

import (
	"math"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
)

// platonicRank is the rank of every Platonic solid.
const platonicRank = 3

// Platonic returns the abstract solid.
func Platonic(name PlatonicName) (*core.Polytope, error) {
	switch name {
	case Tetrahedron:
		return Simplex(platonicRank)
	case Cube:
		return Hypercube(platonicRank)
	case Octahedron:
		return Orthoplex(platonicRank)
	case Icosahedron:
		return icosahedron()
	case Dodecahedron:
		ico, err := icosahedron()
		if err != nil {
			return nil, err
		}
		return core.Dual(ico), nil
	default:
		return nil, catalogErrorf(MethodPlatonic, "solid %d: %w", int(name), ErrUnknownName)
	}
}

// ConcretePlatonic returns the solid with regular coordinates.
func ConcretePlatonic(name PlatonicName) (*concrete.Polytope, error) {
	switch name {
	case Tetrahedron:
		return SimplexCoords(platonicRank)
	case Cube:
		return HypercubeCoords(platonicRank)
	case Octahedron:
		return OrthoplexCoords(platonicRank)
	case Icosahedron:
		return concreteIcosahedron()
	case Dodecahedron:
		ico, err := concreteIcosahedron()
		if err != nil {
			return nil, err
		}
		d, err := concrete.Dual(ico)
		if err != nil {
			return nil, catalogErrorf(MethodPlatonic, "%w", err)
		}
		return d, nil
	default:
		return nil, catalogErrorf(MethodPlatonic, "solid %d: %w", int(name), ErrUnknownName)
	}
}

func icosahedron() (*core.Polytope, error) {
	p, err := core.FromFaces(icosahedronVertices, icosahedronFaces)
	if err != nil {
		return nil, catalogErrorf(MethodPlatonic, "%s: %w", Icosahedron, err)
	}

	return p, nil
}

// concreteIcosahedron places the labelling of icosahedronFaces on the
// unit sphere: poles at z = ±1, rings at z = ±1/√5 with radius 2/√5, the
// lower ring turned by π/5 so that lower vertex k+5 lies between upper
// vertices k-1 and k.
func concreteIcosahedron() (*concrete.Polytope, error) {
	abs, err := icosahedron()
	if err != nil {
		return nil, err
	}
	z := 1 / math.Sqrt(5)
	r := 2 * z
	coords := make([][]float64, 0, icosahedronVertices)
	coords = append(coords, []float64{0, 0, 1})
	for k := 0; k < 5; k++ {
		a := 2 * math.Pi * float64(k) / 5
		coords = append(coords, []float64{r * math.Cos(a), r * math.Sin(a), z})
	}
	for k := 0; k < 5; k++ {
		a := 2*math.Pi*float64(k)/5 - math.Pi/5
		coords = append(coords, []float64{r * math.Cos(a), r * math.Sin(a), -z})
	}
	coords = append(coords, []float64{0, 0, -1})

	return wrap(MethodPlatonic, abs, coords)
}
