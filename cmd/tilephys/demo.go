package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilephys/internal/config"
	"github.com/vovakirdan/tilephys/internal/sim"
)

var flagDemoTable bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the reference scenario",
	Long: `Move a 64x64 box right by 16 units per step, ten times, toward a
tile at x=128, printing the x position after each step and a notice
whenever the box touches a wall.

Examples:
  tilephys demo
  tilephys demo --table`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&flagDemoTable, "table", false, "Print every frame with all contacts")
}

func runDemo(_ *cobra.Command, _ []string) {
	frames := sim.NewRunner(config.DefaultScenario(), newLogger()).Run()

	write := sim.WriteReport
	if flagDemoTable {
		write = sim.WriteTable
	}
	if err := write(os.Stdout, frames); err != nil {
		fail("%v", err)
	}
}
