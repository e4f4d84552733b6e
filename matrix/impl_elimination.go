// SPDX-License-Identifier: MIT
// Package matrix - Gauss-Jordan elimination kernels.
//
// Purpose:
//   - Rank and NullSpace of arbitrary r×c matrices (affine-dimension and
//     hyperplane-normal queries of point sets).
//   - Solve: least-squares solution of A·x = b through the normal equations.
//
// Determinism:
//   - Partial pivoting picks the first row holding the largest |entry| in
//     the pivot column; ties resolve to the lowest row index.
//
// Complexity:
//   - reduce is O(r*c*min(r,c)); Solve adds O(r*c²) to form AᵀA.

package matrix

import "math"

// reduce brings a to reduced row echelon form in place and returns the
// pivot columns in increasing order. Entries with |x| <= eps*scale are
// treated as zero, where scale is max(1, max|a[i][j]|).
func reduce(a [][]float64, eps float64) []int {
	rows := len(a)
	if rows == 0 {
		return nil
	}
	cols := len(a[0])

	scale := 1.0
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			scale = math.Max(scale, math.Abs(a[i][j]))
		}
	}
	tol := eps * scale

	var (
		pivots     []int
		r, c, best int
		p, f       float64
	)
	for c = 0; c < cols && r < rows; c++ {
		best = r
		for i = r + 1; i < rows; i++ {
			if math.Abs(a[i][c]) > math.Abs(a[best][c]) {
				best = i
			}
		}
		if math.Abs(a[best][c]) <= tol {
			for i = r; i < rows; i++ {
				a[i][c] = 0
			}
			continue
		}
		a[r], a[best] = a[best], a[r]

		p = a[r][c]
		for j = c; j < cols; j++ {
			a[r][j] /= p
		}
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			f = a[i][c]
			if f == 0 {
				continue
			}
			for j = c; j < cols; j++ {
				a[i][j] -= f * a[r][j]
			}
		}
		pivots = append(pivots, c)
		r++
	}

	return pivots
}

// Rank returns the numerical rank of m.
//
// Errors:
//   - ErrNilMatrix.
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)
	rows, err := toRows(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(reduce(rows, o.eps)), nil
}

// NullSpace returns a basis of {x : m·x = 0} as unit vectors of length
// m.Cols(). The basis is empty when m has full column rank.
//
// Implementation:
//   - Stage 1: reduce a copy of m to RREF.
//   - Stage 2: one basis vector per free column f: x[f] = 1 and
//     x[pivot k] = -rref[k][f]; then normalize.
//
// Errors:
//   - ErrNilMatrix.
func NullSpace(m Matrix, opts ...Option) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	o := gatherOptions(opts...)
	rows, err := toRows(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	pivots := reduce(rows, o.eps)

	cols := m.Cols()
	isPivot := make([]bool, cols)
	for _, c := range pivots {
		isPivot[c] = true
	}

	basis := make([][]float64, 0, cols-len(pivots))
	for f := 0; f < cols; f++ {
		if isPivot[f] {
			continue
		}
		x := make([]float64, cols)
		x[f] = 1
		for k, c := range pivots {
			x[c] = -rows[k][f]
		}
		normalize(x)
		basis = append(basis, x)
	}

	return basis, nil
}

// Solve returns the least-squares solution x minimizing |a·x - b|.
// For consistent square systems this is the exact solution.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(b) != a.Rows()).
//   - ErrSingular when a does not have full column rank.
//
// Complexity:
//   - Time O(r*c² + c³), Space O(c²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	rows, err := toRows(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Augmented normal equations [AᵀA | Aᵀb].
	n := a.Cols()
	aug := make([][]float64, n)
	var i, j, k int
	var acc float64
	for i = 0; i < n; i++ {
		aug[i] = make([]float64, n+1)
		for j = 0; j < n; j++ {
			acc = ZeroSum
			for k = range rows {
				acc += rows[k][i] * rows[k][j]
			}
			aug[i][j] = acc
		}
		acc = ZeroSum
		for k = range rows {
			acc += rows[k][i] * b[k]
		}
		aug[i][n] = acc
	}

	pivots := reduce(aug, o.eps)
	if len(pivots) < n || pivots[n-1] != n-1 {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	x := make([]float64, n)
	for i = 0; i < n; i++ {
		x[i] = aug[i][n]
	}

	return x, nil
}

// Rotation returns the n×n Givens rotation by theta radians in the plane
// of axes i and j (from axis i towards axis j).
//
// Errors:
//   - ErrInvalidDimensions when n < 2.
//   - ErrOutOfRange when i or j is outside [0,n) or i == j.
func Rotation(n, i, j int, theta float64) (*Dense, error) {
	if n < 2 {
		return nil, matrixErrorf(opRotation, ErrInvalidDimensions)
	}
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return nil, matrixErrorf(opRotation, ErrOutOfRange)
	}
	m, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opRotation, err)
	}
	cos, sin := math.Cos(theta), math.Sin(theta)
	m.data[i*n+i] = cos
	m.data[i*n+j] = -sin
	m.data[j*n+i] = sin
	m.data[j*n+j] = cos

	return m, nil
}

// normalize scales x to unit Euclidean length in place (no-op for zero).
func normalize(x []float64) {
	var s float64
	for _, v := range x {
		s += v * v
	}
	if s == 0 {
		return
	}
	s = math.Sqrt(s)
	for i := range x {
		x[i] /= s
	}
}
