package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilephys/internal/config"
	"github.com/vovakirdan/tilephys/internal/sim"
	"github.com/vovakirdan/tilephys/internal/storage"
)

var (
	flagRunConfig string
	flagRunRecord bool
	flagRunTable  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario from YAML",
	Long: `Load a scenario and step its mover through the tiles.

Without --config the scenario is searched in:
  ~/.tilephys/configs/demo.yaml
  ./configs/demo.yaml
  the built-in demo

Scenario format:
  name: ledge
  mover: {x: 0, y: 0, w: 10, h: 10}
  velocity: {x: 4, y: 3}
  steps: 20
  tiles:
    - {x: 0, y: 40, w: 100, h: 10}

Examples:
  tilephys run
  tilephys run --config ./ledge.yaml --table
  tilephys run --config ./ledge.yaml --record`,
	Args: cobra.NoArgs,
	Run:  runScenario,
}

func init() {
	runCmd.Flags().StringVar(&flagRunConfig, "config", "", "Path to scenario YAML")
	runCmd.Flags().BoolVar(&flagRunRecord, "record", false, "Store the run in the database")
	runCmd.Flags().BoolVar(&flagRunTable, "table", false, "Print every frame with all contacts")
}

func runScenario(_ *cobra.Command, _ []string) {
	logger := newLogger()

	sc, err := config.LoadScenario(flagRunConfig)
	if err != nil {
		fail("%v", err)
	}

	frames := sim.NewRunner(sc, logger).Run()

	write := sim.WriteReport
	if flagRunTable {
		write = sim.WriteTable
	}
	if err := write(os.Stdout, frames); err != nil {
		fail("%v", err)
	}

	if !flagRunRecord {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(sc.Name, frames)
	if err != nil {
		fail("recording run: %v", err)
	}
	logger.Info("run recorded", "id", id, "scenario", sc.Name, "frames", len(frames))
	fmt.Printf("\nRecorded run #%d. View it with 'tilephys trace %d'.\n", id, id)
}
