// Package matrix is the linear-algebra collaborator of the concrete polytope
// layer.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors, never panic) and a finite-only numeric policy.
//   - Kernels on the Matrix interface: Mul, MatVec, Transpose, Scale,
//     Identity and Rotation (Givens plane rotations used to orient vertex
//     coordinates).
//   - Gauss-Jordan elimination: Rank (affine dimension of point sets),
//     NullSpace (hyperplane normals for convex hulls) and Solve
//     (least-squares systems such as circumcenters).
//
// Every kernel has a *Dense fast-path and a generic At/Set fallback, and
// wraps package sentinels with an operation tag so callers can branch with
// errors.Is.
package matrix
