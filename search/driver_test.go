package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/engine"
	"github.com/katalvlaran/bisbm/qcache"
)

// plantedFixture builds a small two-block-per-side bipartite graph: two
// dense communities (A0-B0, A1-B1) and a sparse cross-link, so a correct
// search should recover (Ka=2, Kb=2) or something close to it.
func plantedFixture(t *testing.T) *bigraph.EdgeList {
	t.Helper()
	var edges []bigraph.Edge
	// community 0: side-A nodes 0,1,2 <-> side-B nodes 0,1,2 (global NA+0..2)
	for _, u := range []uint32{0, 1, 2} {
		for _, v := range []uint32{0, 1, 2} {
			edges = append(edges, bigraph.Edge{U: u, V: v})
		}
	}
	// community 1: side-A nodes 3,4,5 <-> side-B nodes 3,4,5
	for _, u := range []uint32{3, 4, 5} {
		for _, v := range []uint32{3, 4, 5} {
			edges = append(edges, bigraph.Edge{U: u, V: v})
		}
	}
	// one sparse cross-link
	edges = append(edges, bigraph.Edge{U: 0, V: 4})

	el, err := bigraph.NewEdgeList(6, 6, edges)
	if err != nil {
		t.Fatalf("NewEdgeList: %v", err)
	}
	return el
}

func newTestDriver(t *testing.T, el *bigraph.EdgeList) *Driver {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	eng := engine.NewGreedy(rand.New(rand.NewSource(2)), el.N())
	q := qcache.Init(el.Len() + el.N())
	cfg := DefaultConfig()
	return New(el, eng, q, rng, cfg)
}

func TestMinimize_ReturnsFiniteSummary(t *testing.T) {
	el := plantedFixture(t)
	d := newTestDriver(t, el)

	sum, err := d.Minimize(context.Background())
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if sum.Ka < 1 || sum.Ka > el.NA {
		t.Errorf("Ka=%d out of range [1,%d]", sum.Ka, el.NA)
	}
	if sum.Kb < 1 || sum.Kb > el.NB {
		t.Errorf("Kb=%d out of range [1,%d]", sum.Kb, el.NB)
	}
	if sum.MDL <= 0 {
		t.Errorf("MDL = %v, want positive", sum.MDL)
	}
	if sum.NA != el.NA || sum.NB != el.NB || sum.E != el.Len() {
		t.Errorf("summary graph stats mismatch: got NA=%d NB=%d E=%d, want %d %d %d",
			sum.NA, sum.NB, sum.E, el.NA, el.NB, el.Len())
	}
}

func TestMinimize_Idempotent(t *testing.T) {
	el := plantedFixture(t)
	d := newTestDriver(t, el)

	first, err := d.Minimize(context.Background())
	if err != nil {
		t.Fatalf("first Minimize: %v", err)
	}
	second, err := d.Minimize(context.Background())
	if err != nil {
		t.Fatalf("second Minimize: %v", err)
	}
	if first.Ka != second.Ka || first.Kb != second.Kb {
		t.Errorf("Minimize not idempotent: (%d,%d) then (%d,%d)", first.Ka, first.Kb, second.Ka, second.Kb)
	}
	if first.MDL != second.MDL {
		t.Errorf("MDL changed across idempotent calls: %v then %v", first.MDL, second.MDL)
	}
}

func TestMinimize_TraceNonEmpty(t *testing.T) {
	el := plantedFixture(t)
	d := newTestDriver(t, el)

	sum, err := d.Minimize(context.Background())
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if len(sum.Trace) == 0 {
		t.Error("expected a non-empty transition trace")
	}
}

func TestMinimize_RespectsCancellation(t *testing.T) {
	el := plantedFixture(t)
	d := newTestDriver(t, el)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Minimize(ctx); err == nil {
		t.Error("expected error from an already-canceled context")
	}
}

func TestMergeLabels_ShiftsAboveQDown(t *testing.T) {
	labels := []uint32{0, 1, 2, 3, 2, 1}
	out := mergeLabels(labels, 1, 2)
	want := []uint32{0, 1, 1, 2, 1, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestCheckLocalMin_NeighborBatchMatchesSequentialEvaluate(t *testing.T) {
	el := plantedFixture(t)
	d := newTestDriver(t, el)
	if err := d.init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	neighbors := enumerateNeighbors(d.rng, d.cur.Ka, d.cur.Kb, d.el.NA, d.el.NB, d.cfg.Kappa)
	if len(neighbors) == 0 {
		t.Skip("no neighbors to evaluate at this fixture's starting point")
	}

	results, err := d.neighborBatch(context.Background(), neighbors)
	if err != nil {
		t.Fatalf("neighborBatch: %v", err)
	}
	if len(results) != len(neighbors) {
		t.Fatalf("got %d results, want %d", len(results), len(neighbors))
	}
	for i, n := range neighbors {
		r := results[i]
		if r.Error != nil {
			t.Fatalf("neighbor (%d,%d): %v", n.Ka, n.Kb, r.Error)
		}
		if r.Result.Ka != n.Ka || r.Result.Kb != n.Kb {
			t.Errorf("result[%d] = (%d,%d), want (%d,%d)", i, r.Result.Ka, r.Result.Kb, n.Ka, n.Kb)
		}
		if r.Result.DL.Total() <= 0 {
			t.Errorf("neighbor (%d,%d): DL.Total() = %v, want positive", n.Ka, n.Kb, r.Result.DL.Total())
		}
	}
}

func TestEnumerateNeighbors_BoundsRespected(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	neighbors := enumerateNeighbors(rng, 1, 1, 6, 6, 2)
	for _, n := range neighbors {
		if n.Ka < 1 || n.Ka > 6 || n.Kb < 1 || n.Kb > 6 {
			t.Errorf("neighbor (%d,%d) out of bounds", n.Ka, n.Kb)
		}
		if n.Ka == 1 && n.Kb == 1 {
			t.Error("neighbor list should exclude the self point")
		}
	}
}
