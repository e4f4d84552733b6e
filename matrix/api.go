// SPDX-License-Identifier: MIT
// Package matrix - thin public facades over kernels.
//
// Purpose:
//   - Provide short, readable entry points for callers composing transforms.
//   - Keep the facades free of logic; kernels own validation and wrapping.

package matrix

// NewIdentity is an alias of Identity kept for symmetry with NewDense.
func NewIdentity(n int) (*Dense, error) { return Identity(n) }

// T is a short alias of Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Product multiplies the matrices left to right: ms[0]·ms[1]·…
// A single operand is cloned.
//
// Errors:
//   - ErrNilMatrix for an empty list or nil operand; ErrDimensionMismatch from Mul.
func Product(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := ms[0].Clone()
	var err error
	for _, m := range ms[1:] {
		if acc, err = Mul(acc, m); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
