// Package polytope is an in-memory toolkit for abstract polytopes: ranked
// incidence structures that generalise polygons and polyhedra to any rank.
//
// What is in the box?
//
//	• Core primitives: an immutable, validated incidence lattice with
//	  rank-indexed element lists, sections, facets and vertex figures
//	• Flags: enumeration, flag changes, orbits, orientability and
//	  isomorphism by flag-graph matching
//	• Constructions: join, pyramid, duoprism, prism, tegum, bipyramid,
//	  antiprism, compound, dual and Petrie dual
//	• Geometry: coordinates on top of the lattice, polar duals, centroids,
//	  circumspheres, hulls and Minkowski sums
//	• A catalog of named polytopes and the polytope command
//
// Everything is organised in subpackages:
//
//	core/      — Polytope, Assemble/New/FromFaces, Validate, Dual, Section
//	flags/     — Flag, Iterator, Walk, Engine, Change, Orbits, Isomorphic
//	construct/ — the product family and the other classical constructions
//	matrix/    — dense matrices, elimination, least squares, rotations
//	concrete/  — coordinate polytopes and geometric constructions
//	catalog/   — simplices, hypercubes, orthoplexes, Platonic solids, Lookup
//	cmd/polytope — command-line front-end
//
// Quick example, the cube as a prism over a square:
//
//	sq, _ := construct.Prism(core.Segment())
//	cube, _ := construct.Prism(sq)
//	cube.Counts() // [1 8 12 6 1]
//
//	go get github.com/katalvlaran/polytope
package polytope
