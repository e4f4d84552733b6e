// Package concrete realizes abstract polytopes geometrically: a
// core.Polytope plus one coordinate vector per vertex.
//
// The layer offers
//
//   - construction: WithCoordinates, Hull, MinkowskiSum;
//   - queries: Centroid, ElementCentroid, Midpoints, EdgeLengths,
//     Circumcenter, Circumradius;
//   - transformations returning new instances: Translate, Scale,
//     Transform (any matrix.Matrix), Recenter;
//   - geometric versions of the construct operations: Dual (polar
//     reciprocation), Extrude, Prism, Pyramid, Tegum, Duoprism, Compound,
//     Antiprism.
//
// Linear algebra (ranks, null spaces, least squares) is delegated to
// package matrix. Polytopes are immutable and safe for concurrent readers.
package concrete
