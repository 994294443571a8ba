package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilephys/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Show the most recent runs stored with 'tilephys run --record'.

Examples:
  tilephys runs
  tilephys runs --limit 50`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(flagRunsLimit)
	if err != nil {
		fail("listing runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Record one with 'tilephys run --record'.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-5s  %-12s  %s\n", "ID", "Scenario", "Steps", "Final", "Date")
	fmt.Printf("  %-5s  %-16s  %-5s  %-12s  %s\n", "--", "--------", "-----", "-----", "----")
	for _, r := range runs {
		final := fmt.Sprintf("(%d,%d)", r.FinalX, r.FinalY)
		fmt.Printf("  %-5d  %-16s  %-5d  %-12s  %s\n",
			r.ID, r.Scenario, r.Steps, final, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
