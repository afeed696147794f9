package checkpoint

import (
	"context"
	"testing"

	"github.com/katalvlaran/bisbm/bookkeep"
	"github.com/katalvlaran/bisbm/entropy"
	"github.com/katalvlaran/bisbm/search"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Run{}, &TransitionRow{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testSummary() search.Summary {
	return search.Summary{
		Ka: 2, Kb: 3, MDL: 17.5,
		NA: 10, NB: 12, E: 40, AvgK: 4.0,
		DL: entropy.DL{Adjacency: 5, Partition: 5, Degree: 5, Edges: 2.5},
		Trace: []bookkeep.Transition{
			{Kind: bookkeep.KindMDL, Ka: 1, Kb: 1},
			{Kind: bookkeep.KindMerge, Ka: 2, Kb: 3},
		},
	}
}

func TestGormRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := NewGormRepository(setupTestDB(t))
	ctx := context.Background()
	want := testSummary()

	if err := repo.Save(ctx, "run-1", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Ka != want.Ka || got.Kb != want.Kb || got.MDL != want.MDL {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
	if len(got.Trace) != len(want.Trace) {
		t.Fatalf("trace length = %d, want %d", len(got.Trace), len(want.Trace))
	}
	for i := range want.Trace {
		if got.Trace[i] != want.Trace[i] {
			t.Errorf("trace[%d] = %+v, want %+v", i, got.Trace[i], want.Trace[i])
		}
	}
}

func TestGormRepository_Load_NotFound(t *testing.T) {
	repo := NewGormRepository(setupTestDB(t))
	_, err := repo.Load(context.Background(), "missing")
	if err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGormRepository_Save_OverwritesPriorRun(t *testing.T) {
	repo := NewGormRepository(setupTestDB(t))
	ctx := context.Background()

	first := testSummary()
	if err := repo.Save(ctx, "run-1", first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	second := testSummary()
	second.Ka, second.Kb = 4, 4
	second.Trace = []bookkeep.Transition{{Kind: bookkeep.KindRollback, Ka: 4, Kb: 4}}
	if err := repo.Save(ctx, "run-1", second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := repo.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Ka != 4 || got.Kb != 4 {
		t.Errorf("Ka,Kb = %d,%d, want 4,4 (overwritten)", got.Ka, got.Kb)
	}
	if len(got.Trace) != 1 {
		t.Fatalf("trace length = %d, want 1 (stale rows not cleared)", len(got.Trace))
	}
}
