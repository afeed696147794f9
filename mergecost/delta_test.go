package mergecost_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/mergecost"
)

func fourBlockMatrix(t *testing.T) *bigraph.BlockMatrix {
	t.Helper()
	m := bigraph.NewBlockMatrix(4) // ka=2 (0,1), kb=2 (2,3)
	set := func(r, s int, v uint64) {
		m.Add(r, s, v)
		m.Add(s, r, v)
	}
	set(0, 2, 3)
	set(0, 3, 1)
	set(1, 2, 1)
	set(1, 3, 4)
	return m
}

func TestDeltaNonNegativeForTypicalMerge(t *testing.T) {
	m := fourBlockMatrix(t)
	d := mergecost.Delta(m, 0, 1, 2)
	require.False(t, d != d, "delta must not be NaN")
}

func TestSamplePairsOnlySameTypeAndNotForbidden(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pairs := mergecost.SamplePairs(rng, 4, 2, 2, 20)
	for _, p := range pairs {
		sameType := (p.P < 2) == (p.Q < 2)
		require.True(t, sameType, "pair %v must be same-type", p)
		require.Less(t, p.P, p.Q)
	}
}

func TestSamplePairsRespectsEmptinessGuard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	// ka=1: block 0 is the only side-A block, so no pair may include it.
	pairs := mergecost.SamplePairs(rng, 3, 1, 2, 50)
	for _, p := range pairs {
		require.NotEqual(t, 0, p.P, "block 0 is the sole side-A block and must never be merged away")
	}
}

func TestBestPicksMinimumNonNegative(t *testing.T) {
	m := fourBlockMatrix(t)
	pairs := []mergecost.Pair{{P: 0, Q: 1}, {P: 2, Q: 3}}
	best, delta, found := mergecost.Best(m, 2, pairs)
	require.True(t, found)
	require.Contains(t, pairs, best)
	require.GreaterOrEqual(t, delta, 0.0)
}

func TestBestReportsNotFoundWhenEmpty(t *testing.T) {
	m := fourBlockMatrix(t)
	_, _, found := mergecost.Best(m, 2, nil)
	require.False(t, found)
}
