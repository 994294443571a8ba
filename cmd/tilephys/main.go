// tilephys is a tile collision sandbox: scripted resolver runs, a run
// recorder and an interactive platformer, locally or over SSH.
//
// Usage:
//
//	tilephys demo              - Run the reference scenario
//	tilephys run               - Run a YAML scenario
//	tilephys runs              - List recorded runs
//	tilephys trace <id>        - Browse the frames of a recorded run
//	tilephys play              - Play the platformer
//	tilephys scores            - Show platformer high scores
//	tilephys serve             - Start SSH server for remote play
//	tilephys list              - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.tilephys/tilephys.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tilephys/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilephys",
	Short: "Axis-separated AABB collision against tile maps",
	Long: `tilephys moves axis-aligned boxes through tile maps and resolves
collisions one axis at a time, X before Y.

Available commands:
  demo     - Run the reference scenario and print each position
  run      - Run a scenario from YAML, optionally recording it
  runs     - List recorded runs
  trace    - Browse the frames of a recorded run
  play     - Play the tile platformer
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show all available games

Examples:
  tilephys demo
  tilephys run --config ./ledge.yaml --record
  tilephys trace 3
  tilephys play
  tilephys serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilephys/tilephys.db", "Path to runs and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the stderr logger for a command.
func newLogger() *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using warn\n", flagLogLevel)
		level = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tilephys",
	})
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
