// SPDX-License-Identifier: MIT

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/catalog"
)

func TestLookup(t *testing.T) {
	cases := map[string][]int{
		"nullitope":    {1},
		"point":        {1, 1},
		"segment":      {1, 2, 1},
		"Triangle":     {1, 3, 3, 1},
		"  square ":    {1, 4, 4, 1},
		"cube":         {1, 8, 12, 6, 1},
		"icosahedron":  {1, 12, 30, 20, 1},
		"polygon:7":    {1, 7, 7, 1},
		"simplex:4":    {1, 5, 10, 10, 5, 1},
		"HYPERCUBE:4":  {1, 16, 32, 24, 8, 1},
		"orthoplex:3":  {1, 6, 12, 8, 1},
		"simplex:-1":   {1},
		"dodecahedron": {1, 20, 30, 12, 1},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := catalog.Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, want, p.Counts())
		})
	}
}

func TestLookup_Errors(t *testing.T) {
	unknown := []string{"", "torus", "prism:3", "polygon:", "polygon:x", "simplex:1.5", "cube:3"}
	for _, name := range unknown {
		_, err := catalog.Lookup(name)
		assert.ErrorIs(t, err, catalog.ErrUnknownName, "name %q", name)
	}

	_, err := catalog.Lookup("polygon:1")
	assert.ErrorIs(t, err, catalog.ErrTooFewVertices)
}

func TestLookupConcrete(t *testing.T) {
	for _, name := range []string{"point", "segment", "triangle", "square", "tetrahedron", "cube", "octahedron", "dodecahedron", "icosahedron", "polygon:9", "simplex:3", "hypercube:3", "orthoplex:5"} {
		t.Run(name, func(t *testing.T) {
			c, err := catalog.LookupConcrete(name)
			require.NoError(t, err)
			abs, err := catalog.Lookup(name)
			require.NoError(t, err)
			assert.True(t, c.Abstract().Equal(abs))
		})
	}

	_, err := catalog.LookupConcrete("nullitope")
	assert.ErrorIs(t, err, catalog.ErrUnknownName)
	_, err = catalog.LookupConcrete("polygon:2")
	assert.ErrorIs(t, err, catalog.ErrTooFewVertices)
}

func TestNames(t *testing.T) {
	names := catalog.Names()
	assert.Len(t, names, 14)
	assert.Contains(t, names, "cube")
	assert.Contains(t, names, "polygon:<n>")
	assert.Equal(t, "cube", names[0])
	assert.Equal(t, "hypercube:<n>", names[10])

	for _, name := range names[:10] {
		_, err := catalog.Lookup(name)
		assert.NoError(t, err, name)
	}
}
