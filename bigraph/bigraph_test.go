package bigraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bisbm/bigraph"
)

// nineNodeExample builds the fixture from spec §8 S3: edges
// {(0,3),(0,4),(0,5),(1,3),(1,4),(1,5),(2,6),(2,7),(2,8)},
// types [1,1,1,2,2,2,2,2,2].
func nineNodeExample(t *testing.T) *bigraph.EdgeList {
	t.Helper()
	pairs := []bigraph.Edge{
		{U: 0, V: 0}, {U: 0, V: 1}, {U: 0, V: 2},
		{U: 1, V: 0}, {U: 1, V: 1}, {U: 1, V: 2},
		{U: 2, V: 3}, {U: 2, V: 4}, {U: 2, V: 5},
	}
	el, err := bigraph.NewEdgeList(3, 6, pairs)
	require.NoError(t, err)
	return el
}

func TestNewEdgeList_RejectsOutOfRangeEndpoint(t *testing.T) {
	_, err := bigraph.NewEdgeList(3, 6, []bigraph.Edge{{U: 3, V: 0}})
	require.ErrorIs(t, err, bigraph.ErrNodeOutOfRange)

	_, err = bigraph.NewEdgeList(3, 6, []bigraph.Edge{{U: 0, V: 6}})
	require.ErrorIs(t, err, bigraph.ErrNodeOutOfRange)
}

func TestNewEdgeList_RejectsEmptySide(t *testing.T) {
	_, err := bigraph.NewEdgeList(0, 6, nil)
	require.ErrorIs(t, err, bigraph.ErrEmptySide)

	_, err = bigraph.NewEdgeList(3, 0, nil)
	require.ErrorIs(t, err, bigraph.ErrEmptySide)
}

func TestNewPartition_AcceptsPureLabels(t *testing.T) {
	el := nineNodeExample(t)
	labels := []uint32{0, 0, 1, 2, 2, 2, 3, 3, 3}

	p, err := bigraph.NewPartition(el, 2, 2, labels)
	require.NoError(t, err)
	require.Equal(t, 4, p.K())
}

func TestNewPartition_RejectsSideABlockAtOrAboveKa(t *testing.T) {
	el := nineNodeExample(t)
	// node 0 is side A but labeled 2, which is >= ka=2.
	labels := []uint32{2, 0, 1, 2, 2, 2, 3, 3, 3}

	_, err := bigraph.NewPartition(el, 2, 2, labels)
	require.ErrorIs(t, err, bigraph.ErrBlockPurityViolated)
}

func TestNewPartition_RejectsSideBBlockBelowKa(t *testing.T) {
	el := nineNodeExample(t)
	// node 3 is side B but labeled 1, which is < ka=2.
	labels := []uint32{0, 0, 1, 1, 2, 2, 3, 3, 3}

	_, err := bigraph.NewPartition(el, 2, 2, labels)
	require.ErrorIs(t, err, bigraph.ErrBlockPurityViolated)
}

func TestNewPartition_RejectsSideBBlockAtOrAboveKaPlusKb(t *testing.T) {
	el := nineNodeExample(t)
	// node 8 is side B but labeled 4, which is >= ka+kb=4.
	labels := []uint32{0, 0, 1, 2, 2, 2, 3, 3, 4}

	_, err := bigraph.NewPartition(el, 2, 2, labels)
	require.ErrorIs(t, err, bigraph.ErrBlockPurityViolated)
}

func TestNewPartition_RejectsLengthMismatch(t *testing.T) {
	el := nineNodeExample(t)
	_, err := bigraph.NewPartition(el, 2, 2, []uint32{0, 0, 1})
	require.ErrorIs(t, err, bigraph.ErrLengthMismatch)
}

func TestNewPartition_RejectsBlockCountExceedingSideSize(t *testing.T) {
	el := nineNodeExample(t)
	labels := make([]uint32, el.N())
	_, err := bigraph.NewPartition(el, 4, 1, labels)
	require.ErrorIs(t, err, bigraph.ErrBlockOutOfRange)

	_, err = bigraph.NewPartition(el, 1, 7, labels)
	require.ErrorIs(t, err, bigraph.ErrBlockOutOfRange)
}

// interleavedRawEdges mirrors the nine-node example above but with old node
// ids interleaved across sides: 0,1,2 side A and 3..8 side B become
// 0,2,4 side A and 1,3,5,6,7,8 side B under this ordering, so Normalize must
// build a non-trivial permutation.
func interleavedRawEdges() ([]bigraph.RawEdge, []bigraph.Side) {
	types := []bigraph.Side{
		bigraph.SideA, bigraph.SideB, bigraph.SideA, bigraph.SideB,
		bigraph.SideA, bigraph.SideB, bigraph.SideB, bigraph.SideB, bigraph.SideB,
	}
	// old ids: A = {0,2,4}, B = {1,3,5,6,7,8}.
	raw := []bigraph.RawEdge{
		{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 5},
		{U: 2, V: 1}, {U: 2, V: 3}, {U: 2, V: 5},
		{U: 4, V: 6}, {U: 4, V: 7}, {U: 4, V: 8},
	}
	return raw, types
}

func TestNormalize_BuildsRoundTripPermutation(t *testing.T) {
	raw, types := interleavedRawEdges()

	el, perm, err := bigraph.Normalize(raw, types)
	require.NoError(t, err)
	require.Equal(t, 3, el.NA)
	require.Equal(t, 6, el.NB)
	require.Len(t, perm.OldToNew, len(types))
	require.Len(t, perm.NewToOld, len(types))

	// old -> new -> old is the identity over every node.
	for oldID := range types {
		newID := perm.OldToNew[oldID]
		require.Equal(t, uint32(oldID), perm.NewToOld[newID], "old node %d", oldID)
	}

	// Every new-numbered edge stays within its declared side ranges.
	for _, e := range el.Edges() {
		require.Less(t, int(e.U), el.NA)
		require.Less(t, int(e.V), el.NB)
	}
}

func TestNormalize_RejectsEmptySide(t *testing.T) {
	types := []bigraph.Side{bigraph.SideA, bigraph.SideA, bigraph.SideA}
	_, _, err := bigraph.Normalize(nil, types)
	require.ErrorIs(t, err, bigraph.ErrEmptySide)
}

func TestNormalize_RejectsBipartiteViolation(t *testing.T) {
	types := []bigraph.Side{bigraph.SideA, bigraph.SideA, bigraph.SideB}
	raw := []bigraph.RawEdge{{U: 0, V: 1}} // both side A
	_, _, err := bigraph.Normalize(raw, types)
	require.True(t, errors.Is(err, bigraph.ErrBipartiteViolation))
}

func TestNormalize_RejectsSelfLoop(t *testing.T) {
	types := []bigraph.Side{bigraph.SideA, bigraph.SideB}
	raw := []bigraph.RawEdge{{U: 0, V: 0}}
	_, _, err := bigraph.Normalize(raw, types)
	require.ErrorIs(t, err, bigraph.ErrSelfLoop)
}

func TestBlockMatrix_CheckSymmetricDetectsAsymmetry(t *testing.T) {
	m := bigraph.NewBlockMatrix(2)
	m.Add(0, 1, 3)
	m.Add(1, 0, 5)
	require.ErrorIs(t, m.CheckSymmetric(), bigraph.ErrMatrixAsymmetric)
}

func TestBlockMatrix_CheckTotalDetectsMismatch(t *testing.T) {
	m := bigraph.NewBlockMatrix(2)
	m.Add(0, 1, 1)
	m.Add(1, 0, 1)
	require.ErrorIs(t, m.CheckTotal(5), bigraph.ErrMatrixEdgeCountMismatch)
	require.NoError(t, m.CheckTotal(1))
}
