// SPDX-License-Identifier: MIT
// Package: polytope/catalog
//
// impl_coords.go — regular coordinates for the families.
//
// Contract:
//   • Every result is centred at the origin in dimension n (2 for polygons).
//   • Abstract() equals the abstract constructor of the same name.
//   • RegularPolygon: vertex i at angle 2πi/n on the unit circle.
//   • SimplexCoords, HypercubeCoords: edge length EdgeLength.
//   • OrthoplexCoords: vertices ±e_k, edge length √2.

package catalog

import (
	"math"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
)

// RegularPolygon returns the regular n-gon inscribed in the unit circle,
// n >= MinRegularPolygonVertices.
func RegularPolygon(n int) (*concrete.Polytope, error) {
	if err := validateMin(MethodRegularPolygon, n, MinRegularPolygonVertices); err != nil {
		return nil, err
	}
	abs, err := Polygon(n)
	if err != nil {
		return nil, catalogErrorf(MethodRegularPolygon, "%w", err)
	}
	coords := make([][]float64, n)
	for i := range coords {
		a := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = []float64{math.Cos(a), math.Sin(a)}
	}

	return wrap(MethodRegularPolygon, abs, coords)
}

// SimplexCoords returns the regular n-simplex, n >= 0. Each pyramid apex
// sits above the centroid of the previous simplex at the height that keeps
// every edge at EdgeLength.
func SimplexCoords(n int) (*concrete.Polytope, error) {
	if err := validateMin(MethodSimplex, n, 0); err != nil {
		return nil, err
	}
	p, err := concretePoint()
	if err != nil {
		return nil, catalogErrorf(MethodSimplex, "%w", err)
	}
	for m := 0; m < n; m++ {
		// Circumradius of the regular m-simplex with edge EdgeLength.
		r := EdgeLength * math.Sqrt(float64(m)/float64(2*(m+1)))
		if p, err = concrete.Pyramid(p, math.Sqrt(EdgeLength*EdgeLength-r*r)); err != nil {
			return nil, catalogErrorf(MethodSimplex, "step %d: %w", m+1, err)
		}
	}

	return p.Recenter(), nil
}

// HypercubeCoords returns the n-cube [-1, 1]^n, n >= 0.
func HypercubeCoords(n int) (*concrete.Polytope, error) {
	if err := validateMin(MethodHypercube, n, MinCubeRank); err != nil {
		return nil, err
	}
	p, err := concretePoint()
	if err != nil {
		return nil, catalogErrorf(MethodHypercube, "%w", err)
	}
	for k := 0; k < n; k++ {
		if p, err = concrete.Prism(p, EdgeLength); err != nil {
			return nil, catalogErrorf(MethodHypercube, "step %d: %w", k+1, err)
		}
	}

	return p, nil
}

// OrthoplexCoords returns the n-orthoplex with vertices ±e_k, n >= 0.
func OrthoplexCoords(n int) (*concrete.Polytope, error) {
	if err := validateMin(MethodOrthoplex, n, MinCubeRank); err != nil {
		return nil, err
	}
	p, err := concretePoint()
	if err != nil {
		return nil, catalogErrorf(MethodOrthoplex, "%w", err)
	}
	axis, err := concrete.WithCoordinates(core.Segment(), [][]float64{{-1}, {1}})
	if err != nil {
		return nil, catalogErrorf(MethodOrthoplex, "%w", err)
	}
	for k := 0; k < n; k++ {
		if p, err = concrete.Tegum(p, axis); err != nil {
			return nil, catalogErrorf(MethodOrthoplex, "step %d: %w", k+1, err)
		}
	}

	return p, nil
}

// concretePoint is the point in dimension 0.
func concretePoint() (*concrete.Polytope, error) {
	return concrete.WithCoordinates(core.Point(), [][]float64{{}})
}

// wrap attaches coords to abs under the method's error prefix.
func wrap(method string, abs *core.Polytope, coords [][]float64) (*concrete.Polytope, error) {
	p, err := concrete.WithCoordinates(abs, coords)
	if err != nil {
		return nil, catalogErrorf(method, "%w", err)
	}

	return p, nil
}
