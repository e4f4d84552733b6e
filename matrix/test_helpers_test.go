// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Offer a wrapper that hides *Dense to exercise the interface fallbacks.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/matrix"
)

// Tol is the comparison tolerance for floating-point results.
const Tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set paths in code under test.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()

	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "matrix.FromRows")

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()

	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireMatrixInDelta compares m against rows entry by entry.
func RequireMatrixInDelta(t testing.TB, rows [][]float64, m matrix.Matrix) {
	t.Helper()

	require.Equal(t, len(rows), m.Rows(), "rows")
	require.Equal(t, len(rows[0]), m.Cols(), "cols")
	for i := range rows {
		for j := range rows[i] {
			require.InDelta(t, rows[i][j], MustAt(t, m, i, j), Tol, "(%d,%d)", i, j)
		}
	}
}
