// SPDX-License-Identifier: MIT
// Package matrix_test verifies Mul, MatVec, Transpose, Scale and Identity
// on both the *Dense fast-path and the interface fallback.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/matrix"
)

func TestMul(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	for name, tc := range map[string]struct{ a, b matrix.Matrix }{
		"dense":    {a, b},
		"fallback": {hide{a}, b},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := matrix.Mul(tc.a, tc.b)
			require.NoError(t, err)
			RequireMatrixInDelta(t, want, got)
		})
	}

	_, err := matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireMatrixInDelta(t, want, got)

	got, err = matrix.T(hide{a})
	require.NoError(t, err)
	RequireMatrixInDelta(t, want, got)

	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 0, 2}, {0, 3, 0}})
	for _, m := range []matrix.Matrix{a, hide{a}} {
		y, err := matrix.MatVec(m, []float64{1, 2, 3})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{7, 6}, y, Tol)
	}

	_, err := matrix.MatVec(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	got, err := matrix.Scale(MustRows(t, [][]float64{{1, -2}}), 3)
	require.NoError(t, err)
	RequireMatrixInDelta(t, [][]float64{{3, -6}}, got)
}

func TestIdentityAndProduct(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})

	got, err := matrix.Product(id, a, id)
	require.NoError(t, err)
	RequireMatrixInDelta(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}, got)

	_, err = matrix.Identity(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Product()
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
