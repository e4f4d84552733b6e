// SPDX-License-Identifier: MIT
// Package catalog_test contains fixtures shared by the catalog tests.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/concrete"
)

// Tol is the comparison tolerance for coordinates.
const Tol = 1e-9

// requireRegular fails unless p is valid and every edge has length want.
func requireRegular(t *testing.T, p *concrete.Polytope, want float64) {
	t.Helper()
	require.NoError(t, p.Abstract().Validate())
	for i, l := range p.EdgeLengths() {
		require.InDelta(t, want, l, Tol, "edge %d", i)
	}
}

// requireCentred fails unless the centroid of p is the origin.
func requireCentred(t *testing.T, p *concrete.Polytope) {
	t.Helper()
	for i, x := range p.Centroid() {
		require.InDelta(t, 0, x, Tol, "coordinate %d", i)
	}
}
