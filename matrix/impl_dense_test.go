// SPDX-License-Identifier: MIT
// Package matrix_test verifies Dense storage and accessors.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/matrix"
)

func TestNewDense_ZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Zero(t, MustAt(t, m, i, j))
		}
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 4.5))
	assert.Equal(t, 4.5, MustAt(t, m, 1, 0))

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, cp, 0, 0))
}

func TestFromRows(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row)

	row[0] = 100
	assert.Equal(t, 4.0, MustAt(t, m, 1, 0), "Row returns a copy")

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromRows([][]float64{{math.Inf(1)}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_String(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4.5}})
	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
