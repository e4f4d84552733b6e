// SPDX-License-Identifier: MIT

// Package catalog builds the named polytopes: points, segments, polygons,
// simplices, hypercubes, orthoplexes and the five Platonic solids, both as
// abstract polytopes and with regular coordinates.
//
// The families are built by iterating the constructors of package
// construct (pyramids for simplices, prisms for hypercubes, bipyramids
// for orthoplexes), so their vertex orders are the ones construct
// documents. The concrete variants use package concrete with the same
// iteration, so Abstract() of a concrete result equals its abstract twin.
//
// Lookup resolves textual names such as "cube", "polygon:7" or
// "simplex:4", which is what the polytope command line accepts.
//
// Errors:
//   - ErrTooFewVertices when a size or rank parameter is below its minimum.
//   - ErrUnknownName when Lookup or ParsePlatonic cannot resolve a name.
package catalog
