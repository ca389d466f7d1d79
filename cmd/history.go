package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ffi-playground/numffi/internal/benchstore"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List persisted benchmark runs",
	Long:  `Lists benchmark runs previously saved with "bench --store", newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		storePath, err := cmd.Flags().GetString("store")
		if err != nil {
			return err
		}
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		store, err := benchstore.Open(storePath)
		if err != nil {
			return fmt.Errorf("failed to open results store: %w", err)
		}
		defer store.Close()

		runs, err := store.ListRuns(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-9s  %-6s  %7s  %12s  %12s\n",
			"RUN ID", "STARTED", "OP", "PATH", "WORKERS", "TOTAL OPS", "OPS/SEC")
		for _, r := range runs {
			fmt.Printf("%-36s  %-20s  %-9s  %-6s  %7d  %12d  %12.2f\n",
				r.RunID,
				r.StartedAt.UTC().Format(time.RFC3339),
				r.Op,
				r.Path,
				r.Workers,
				r.TotalOps,
				r.OpsPerSecond)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringP("store", "s", "", "SQLite database to read results from")
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of runs to list")
	historyCmd.MarkFlagRequired("store")
}
