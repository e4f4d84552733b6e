// Package catalog defines shared constants used by the named constructors.
package catalog

//-----------------------------------------------------------------------------
// Constructor Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPolygon is the canonical name for the Polygon constructor.
	MethodPolygon = "Polygon"
	// MethodSimplex is the canonical name for the Simplex constructor.
	MethodSimplex = "Simplex"
	// MethodHypercube is the canonical name for the Hypercube constructor.
	MethodHypercube = "Hypercube"
	// MethodOrthoplex is the canonical name for the Orthoplex constructor.
	MethodOrthoplex = "Orthoplex"
	// MethodPlatonic is the canonical name for the Platonic constructors.
	MethodPlatonic = "Platonic"
	// MethodRegularPolygon is the canonical name for the RegularPolygon constructor.
	MethodRegularPolygon = "RegularPolygon"
	// MethodLookup is the canonical name for Lookup and LookupConcrete.
	MethodLookup = "Lookup"
)

//-----------------------------------------------------------------------------
// Minimum Parameters
//-----------------------------------------------------------------------------

// MinPolygonVertices is the smallest abstract polygon, the digon.
const MinPolygonVertices = 2

// MinRegularPolygonVertices is the smallest polygon with distinct edges in
// the plane.
const MinRegularPolygonVertices = 3

// MinSimplexRank is the rank of the smallest simplex, the nullitope.
const MinSimplexRank = -1

// MinCubeRank is the smallest rank for hypercubes and orthoplexes, where
// both families start at the point.
const MinCubeRank = 0

// EdgeLength is the edge length of SimplexCoords and HypercubeCoords.
const EdgeLength = 2.0

// nameSeparator splits a family name from its parameter in Lookup.
const nameSeparator = ":"
