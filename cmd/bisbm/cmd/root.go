package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bisbm/bconfig"
	"github.com/katalvlaran/bisbm/telemetry"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// cfg is the configuration loaded by PersistentPreRunE, available to
	// every subcommand via GetConfig.
	cfg *bconfig.Config

	telemetryShutdown telemetry.ShutdownFunc
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "bisbm",
	Short: "Fit a bipartite stochastic block model by minimum description length",
	Long: `bisbm infers a two-type (bipartite) stochastic block model from an edge
list, selecting the number of blocks on each side (K_a, K_b) by minimum
description length rather than requiring them as input.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := bconfig.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = loaded

		shutdown, err := telemetry.Init(context.Background(), telemetry.FromBConfig(cfg.Telemetry, Version))
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		telemetryShutdown = shutdown

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			return telemetryShutdown(context.Background())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a bisbm config file (YAML); searches ./bisbm.yaml and /etc/bisbm if empty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	binName := BinName()
	rootCmd.Example = `  # Fit a model with automatic K_a/K_b selection
  ` + binName + ` run -e edges.tsv -t types.txt

  # Generate a synthetic planted instance and fit it in one pass
  ` + binName + ` generate -o synthetic.tsv --types-out synthetic-types.txt
  ` + binName + ` run -e synthetic.tsv -t synthetic-types.txt`
}

// GetConfig returns the configuration loaded by the root command's
// PersistentPreRunE.
func GetConfig() *bconfig.Config { return cfg }

// BinName returns the base name of the current executable.
func BinName() string { return filepath.Base(os.Args[0]) }
