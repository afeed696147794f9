package artifact

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/katalvlaran/bisbm/entropy"
	"github.com/katalvlaran/bisbm/search"
)

func TestExportSummary_WritesValidJSON(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	sum := search.Summary{
		Ka: 2, Kb: 2, MDL: 42.5,
		NA: 10, NB: 10, E: 30, AvgK: 3.0,
		DL: entropy.DL{Adjacency: 10, Partition: 10, Degree: 10, Edges: 12.5},
	}

	ctx := context.Background()
	if err := ExportSummary(ctx, store, "run-1/summary.json", sum); err != nil {
		t.Fatalf("ExportSummary: %v", err)
	}

	rc, err := store.Download(ctx, "run-1/summary.json")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	var roundTrip search.Summary
	if err := json.Unmarshal(body, &roundTrip); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if roundTrip.Ka != sum.Ka || roundTrip.Kb != sum.Kb || roundTrip.MDL != sum.MDL {
		t.Errorf("round trip mismatch: got %+v, want %+v", roundTrip, sum)
	}
}
