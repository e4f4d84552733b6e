package flags_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/flags"
)

func collect(t *testing.T, p *core.Polytope) []flags.Flag {
	t.Helper()

	var out []flags.Flag
	it := flags.NewIterator(p)
	for it.Next() {
		out = append(out, it.Flag())
	}
	require.NoError(t, it.Err())

	return out
}

func TestIterator_TriangleOrder(t *testing.T) {
	got := collect(t, polygon(t, 3))
	want := []flags.Flag{
		{0, 0, 0, 0}, {0, 0, 2, 0},
		{0, 1, 0, 0}, {0, 1, 1, 0},
		{0, 2, 1, 0}, {0, 2, 2, 0},
	}
	assert.Equal(t, want, got)
}

func TestIterator_SmallRanks(t *testing.T) {
	assert.Equal(t, []flags.Flag{{0}}, collect(t, core.Nullitope()))
	assert.Equal(t, []flags.Flag{{0, 0}}, collect(t, core.Point()))
	assert.Equal(t, []flags.Flag{{0, 0, 0}, {0, 1, 0}}, collect(t, core.Segment()))
}

func TestIterator_Counts(t *testing.T) {
	assert.Len(t, collect(t, tetrahedron(t)), FlagsTetrahedron)
	assert.Len(t, collect(t, cube(t)), FlagsCube)
	assert.Len(t, collect(t, hemicube(t)), FlagsHemicube)
}

func TestIterator_FlagsAreChains(t *testing.T) {
	p := cube(t)
	for _, f := range collect(t, p) {
		require.Equal(t, p.Rank(), f.Rank())
		for r := 0; r <= p.Rank(); r++ {
			assert.True(t, p.Incident(r-1, f.At(r-1), r, f.At(r)), "flag %v breaks at rank %d", f, r)
		}
	}
}

func TestIterator_FlagIsCopy(t *testing.T) {
	it := flags.NewIterator(polygon(t, 4))
	require.True(t, it.Next())
	f := it.Flag()
	f[1] = 99
	assert.Equal(t, 0, it.Flag().At(0))
}

func TestIterator_InvalidChain(t *testing.T) {
	// Vertex 1 has no edge above it.
	p, err := core.Assemble([][][]int{{{}}, {{0}, {0}}, {{0}}})
	require.NoError(t, err)

	it := flags.NewIterator(p)
	require.True(t, it.Next())
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), flags.ErrInvalidChain)
	assert.False(t, it.Next(), "an ended iterator stays ended")
}

func TestIterator_EmptyRank(t *testing.T) {
	cases := map[string][][][]int{
		"no nullitope": {{}, {{}}},
		"no vertices":  {{{}}, {}},
	}
	for name, subs := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := core.Assemble(subs)
			require.NoError(t, err)

			it := flags.NewIterator(p)
			assert.False(t, it.Next())
			assert.ErrorIs(t, it.Err(), flags.ErrInvalidChain)
		})
	}
}

func TestIterator_Nil(t *testing.T) {
	it := flags.NewIterator(nil)
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), flags.ErrPolytopeNil)
}

func TestWalk(t *testing.T) {
	p := cube(t)

	calls := 0
	require.NoError(t, flags.Walk(p, func(flags.Flag) error { calls++; return nil }))
	assert.Equal(t, FlagsCube, calls)

	calls = 0
	require.NoError(t, flags.Walk(p, func(flags.Flag) error { calls++; return nil }, flags.WithLimit(5)))
	assert.Equal(t, 5, calls)

	calls = 0
	require.NoError(t, flags.Walk(p, func(flags.Flag) error {
		calls++
		if calls == 3 {
			return flags.ErrStop
		}
		return nil
	}))
	assert.Equal(t, 3, calls)

	boom := errors.New("boom")
	err := flags.Walk(p, func(flags.Flag) error { return boom })
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = flags.Walk(p, func(flags.Flag) error { return nil }, flags.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, flags.Walk(nil, nil), flags.ErrPolytopeNil)
}

func TestFlag_Helpers(t *testing.T) {
	f := flags.Flag{0, 3, 1, 0}
	assert.Equal(t, 2, f.Rank())
	assert.Equal(t, 3, f.At(0))
	assert.True(t, f.Equal(f.Clone()))
	assert.False(t, f.Equal(flags.Flag{0, 3, 2, 0}))
	assert.False(t, f.Equal(flags.Flag{0, 3}))
	assert.Equal(t, "[0 3 1 0]", f.String())
}
