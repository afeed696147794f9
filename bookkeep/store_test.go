package bookkeep_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/bookkeep"
	"github.com/katalvlaran/bisbm/entropy"
)

func TestPutGetRoundTrip(t *testing.T) {
	s := bookkeep.NewStore()
	k := bookkeep.Key{Ka: 2, Kb: 3}
	dl := entropy.DL{Adjacency: 1, Partition: 2, Degree: 3, Edges: 4}
	m := bigraph.NewBlockMatrix(5)
	mb := []uint32{0, 1, 2}

	s.Put(k, dl, m, mb)
	gotDL, gotErs, gotMb, ok := s.Get(k)
	require.True(t, ok)
	require.Equal(t, dl, gotDL)
	require.Same(t, m, gotErs)
	require.Equal(t, mb, gotMb)
}

func TestGetMissingReturnsNotOK(t *testing.T) {
	s := bookkeep.NewStore()
	_, _, _, ok := s.Get(bookkeep.Key{Ka: 9, Kb: 9})
	require.False(t, ok)
}

func TestKeysPreservesInsertionOrder(t *testing.T) {
	s := bookkeep.NewStore()
	keys := []bookkeep.Key{{Ka: 3, Kb: 3}, {Ka: 1, Kb: 1}, {Ka: 2, Kb: 2}}
	for _, k := range keys {
		s.Put(k, entropy.DL{}, bigraph.NewBlockMatrix(1), nil)
	}
	require.Equal(t, keys, s.Keys())
}

func TestArgMinPicksLowestTotalTieBreaksByInsertion(t *testing.T) {
	s := bookkeep.NewStore()
	s.Put(bookkeep.Key{Ka: 1, Kb: 1}, entropy.DL{Adjacency: 10}, bigraph.NewBlockMatrix(1), nil)
	s.Put(bookkeep.Key{Ka: 2, Kb: 2}, entropy.DL{Adjacency: 5}, bigraph.NewBlockMatrix(1), nil)
	s.Put(bookkeep.Key{Ka: 3, Kb: 3}, entropy.DL{Adjacency: 5}, bigraph.NewBlockMatrix(1), nil)

	key, dl, ok := s.ArgMin()
	require.True(t, ok)
	require.Equal(t, bookkeep.Key{Ka: 2, Kb: 2}, key)
	require.Equal(t, 5.0, dl.Total())
}

func TestArgMinEmptyStore(t *testing.T) {
	s := bookkeep.NewStore()
	_, _, ok := s.ArgMin()
	require.False(t, ok)
}

func TestRecordAndTrace(t *testing.T) {
	s := bookkeep.NewStore()
	s.Record(bookkeep.KindMerge, 3, 3)
	s.Record(bookkeep.KindMDL, 2, 3)

	trace := s.Trace()
	require.Equal(t, []bookkeep.Transition{
		{Kind: bookkeep.KindMerge, Ka: 3, Kb: 3},
		{Kind: bookkeep.KindMDL, Ka: 2, Kb: 3},
	}, trace)
}

func TestRollbackRestoresArgminAndRecordsTransition(t *testing.T) {
	s := bookkeep.NewStore()
	s.Put(bookkeep.Key{Ka: 1, Kb: 1}, entropy.DL{Adjacency: 10}, bigraph.NewBlockMatrix(2), []uint32{0, 1})
	s.Put(bookkeep.Key{Ka: 2, Kb: 2}, entropy.DL{Adjacency: 1}, bigraph.NewBlockMatrix(4), []uint32{0, 1, 2, 3})

	key, dl, ers, mb, ok := s.Rollback()
	require.True(t, ok)
	require.Equal(t, bookkeep.Key{Ka: 2, Kb: 2}, key)
	require.Equal(t, 1.0, dl.Total())
	require.Equal(t, 4, ers.K)
	require.Equal(t, []uint32{0, 1, 2, 3}, mb)

	trace := s.Trace()
	require.Equal(t, bookkeep.KindRollback, trace[len(trace)-1].Kind)
}
