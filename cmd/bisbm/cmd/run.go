package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bisbm/artifact"
	"github.com/katalvlaran/bisbm/bigraph"
	"github.com/katalvlaran/bisbm/checkpoint"
	"github.com/katalvlaran/bisbm/engine"
	"github.com/katalvlaran/bisbm/ioformat"
	"github.com/katalvlaran/bisbm/qcache"
	"github.com/katalvlaran/bisbm/search"
)

var (
	runEdgesPath    string
	runTypesPath    string
	runEngineKind   string
	runEngineBinary string
	runSeed         int64
	runExportKey    string
	runCheckpoint   bool
	runID           string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fit a bipartite SBM to an edge list, selecting K_a and K_b automatically",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runEdgesPath, "edges", "e", "", "Edge-list file (required)")
	runCmd.Flags().StringVarP(&runTypesPath, "types", "t", "", "Types file (required)")
	runCmd.MarkFlagRequired("edges")
	runCmd.MarkFlagRequired("types")

	runCmd.Flags().StringVar(&runEngineKind, "engine", "greedy", "Partitioning engine: greedy (in-process) or exec (external binary)")
	runCmd.Flags().StringVar(&runEngineBinary, "engine-binary", "", "External engine binary path (required when --engine=exec)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "Random seed for the in-process engine")
	runCmd.Flags().StringVar(&runExportKey, "export", "", "Artifact storage key to export the summary JSON to (skipped if empty)")
	runCmd.Flags().BoolVar(&runCheckpoint, "checkpoint", false, "Persist the run's summary and trace to the checkpoint database")
	runCmd.Flags().StringVar(&runID, "run-id", "", "Run identifier for --checkpoint (auto-generated if empty)")
}

func runRun(cmd *cobra.Command, args []string) error {
	c := GetConfig()

	ef, err := os.Open(runEdgesPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", runEdgesPath, err)
	}
	defer ef.Close()
	rawEdges, err := ioformat.ReadEdgeList(ef)
	if err != nil {
		return fmt.Errorf("reading %s: %w", runEdgesPath, err)
	}

	tf, err := os.Open(runTypesPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", runTypesPath, err)
	}
	defer tf.Close()
	types, err := ioformat.ReadTypes(tf)
	if err != nil {
		return fmt.Errorf("reading %s: %w", runTypesPath, err)
	}

	el, _, err := bigraph.Normalize(rawEdges, types)
	if err != nil {
		return fmt.Errorf("normalizing graph: %w", err)
	}

	eng, err := buildEngine(el.N())
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(runSeed))
	q := qcache.Init(el.Len() + el.N())
	driver := search.New(el, eng, q, rng, c.ToSearchConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := driver.Minimize(ctx)
	if err != nil {
		return fmt.Errorf("minimizing description length: %w", err)
	}

	printSummary(summary)

	id := runID
	if id == "" {
		id = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	if runExportKey != "" {
		store, err := artifact.New(c.Storage)
		if err != nil {
			return fmt.Errorf("building artifact storage: %w", err)
		}
		if err := artifact.ExportSummary(ctx, store, runExportKey, summary); err != nil {
			return fmt.Errorf("exporting summary: %w", err)
		}
		fmt.Printf("summary exported to %s\n", runExportKey)
	}

	if runCheckpoint {
		db, err := checkpoint.NewGormDB(c.Database, c.Telemetry.Enabled)
		if err != nil {
			return fmt.Errorf("opening checkpoint database: %w", err)
		}
		repo := checkpoint.NewGormRepository(db)
		if err := repo.Save(ctx, id, summary); err != nil {
			return fmt.Errorf("saving checkpoint: %w", err)
		}
		fmt.Printf("checkpoint saved as %q\n", id)
	}

	return nil
}

func buildEngine(qMax int) (engine.Engine, error) {
	switch runEngineKind {
	case "greedy", "":
		rng := rand.New(rand.NewSource(runSeed))
		return engine.NewGreedy(rng, qMax), nil
	case "exec":
		if runEngineBinary == "" {
			return nil, fmt.Errorf("--engine-binary is required when --engine=exec")
		}
		return &engine.Exec{BinaryPath: runEngineBinary}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (valid: greedy, exec)", runEngineKind)
	}
}

func printSummary(s search.Summary) {
	fmt.Println("=== bisbm fit ===")
	fmt.Printf("K_a=%d K_b=%d\n", s.Ka, s.Kb)
	fmt.Printf("N_a=%d N_b=%d E=%d avg_k=%.3f\n", s.NA, s.NB, s.E, s.AvgK)
	fmt.Printf("MDL=%.4f (adjacency=%.4f partition=%.4f degree=%.4f edges=%.4f)\n",
		s.MDL, s.DL.Adjacency, s.DL.Partition, s.DL.Degree, s.DL.Edges)
	fmt.Printf("transitions recorded: %d\n", len(s.Trace))
}
