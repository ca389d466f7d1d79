package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ffi-playground/numffi/internal/benchrun"
	"github.com/ffi-playground/numffi/internal/benchstore"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark call throughput across the boundary",
	Long: `Runs a worker pool calling one of the exported operations for a wall-clock
duration and reports throughput and mean latency. The call path selects the
pure-Go implementation or the cgo round trip, so the two can be compared.
Results can be persisted to a SQLite database with --store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		call, err := resolveCall(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Starting %s benchmark (%s path)...\n", cfg.Op, cfg.Path)
		fmt.Printf("Duration: %v\n", cfg.Duration)
		fmt.Printf("Workers: %d\n", cfg.Workers)
		fmt.Printf("Max n: %d\n", cfg.MaxN)
		fmt.Println()

		results, err := benchrun.Run(cmd.Context(), cfg, call, os.Stdout)
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}

		benchrun.WriteSummary(os.Stdout, results)
		fmt.Printf("\n=== Markdown Table ===\n")
		fmt.Print(benchrun.FormatMarkdown(results))
		fmt.Printf("======================\n")

		storePath, err := cmd.Flags().GetString("store")
		if err != nil {
			return err
		}
		if storePath != "" {
			if err := persistRun(cmd, storePath, results); err != nil {
				return err
			}
			fmt.Printf("Saved run %s to %s\n", results.RunID, storePath)
		}
		return nil
	},
}

func persistRun(cmd *cobra.Command, path string, results *benchrun.Results) error {
	store, err := benchstore.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open results store: %w", err)
	}
	defer store.Close()

	if err := store.SaveRun(cmd.Context(), results); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	return nil
}

// resolveConfig merges defaults, an optional YAML config file, and any
// explicitly set flags, in that order of precedence (flags win).
func resolveConfig(cmd *cobra.Command) (benchrun.Config, error) {
	cfg := benchrun.DefaultConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, fmt.Errorf("failed to get config: %w", err)
	}
	if configPath != "" {
		cfg, err = benchrun.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("op") {
		cfg.Op, err = cmd.Flags().GetString("op")
		if err != nil {
			return cfg, fmt.Errorf("failed to get op: %w", err)
		}
	}
	if cmd.Flags().Changed("path") {
		cfg.Path, err = cmd.Flags().GetString("path")
		if err != nil {
			return cfg, fmt.Errorf("failed to get path: %w", err)
		}
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers, err = cmd.Flags().GetInt("workers")
		if err != nil {
			return cfg, fmt.Errorf("failed to get workers: %w", err)
		}
	}
	if cmd.Flags().Changed("duration") {
		cfg.Duration, err = cmd.Flags().GetDuration("duration")
		if err != nil {
			return cfg, fmt.Errorf("failed to get duration: %w", err)
		}
	}
	if cmd.Flags().Changed("max-n") {
		cfg.MaxN, err = cmd.Flags().GetUint32("max-n")
		if err != nil {
			return cfg, fmt.Errorf("failed to get max-n: %w", err)
		}
	}

	return cfg, nil
}

func resolveCall(cfg benchrun.Config) (benchrun.CallFunc, error) {
	switch cfg.Path {
	case benchrun.PathNative:
		return benchrun.NativeCall(cfg.Op)
	case benchrun.PathCgo:
		return cgoCall(cfg.Op)
	default:
		return nil, fmt.Errorf("unknown path %q", cfg.Path)
	}
}

func init() {
	rootCmd.AddCommand(benchCmd)

	defaults := benchrun.DefaultConfig()
	benchCmd.Flags().StringP("op", "o", defaults.Op, "operation to benchmark (add|factorial)")
	benchCmd.Flags().String("path", defaults.Path, "call path across the boundary (native|cgo)")
	benchCmd.Flags().IntP("workers", "w", defaults.Workers, "number of concurrent workers")
	benchCmd.Flags().DurationP("duration", "t", defaults.Duration, "duration to run the benchmark")
	benchCmd.Flags().Uint32("max-n", defaults.MaxN, "inputs are drawn uniformly from [0, max-n]")
	benchCmd.Flags().StringP("config", "c", "", "YAML config file with benchmark parameters")
	benchCmd.Flags().StringP("store", "s", "", "SQLite database to persist results to")
}
