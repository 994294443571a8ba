package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilephys/internal/platform/tui"
	"github.com/vovakirdan/tilephys/internal/sim"
	"github.com/vovakirdan/tilephys/internal/storage"
)

var flagTracePlain bool

var traceCmd = &cobra.Command{
	Use:   "trace <run-id>",
	Short: "Browse the frames of a recorded run",
	Long: `Open an interactive table with one row per step of a recorded run,
showing the mover rect and its floor, ceiling and wall contacts.

Examples:
  tilephys trace 3
  tilephys trace 3 --plain`,
	Args: cobra.ExactArgs(1),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().BoolVar(&flagTracePlain, "plain", false, "Print the frames instead of opening the viewer")
}

func runTrace(_ *cobra.Command, args []string) {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	if flagTracePlain {
		frames, err := store.RunFrames(runID)
		if err != nil {
			store.Close()
			traceFail(runID, err)
		}
		if err := sim.WriteTable(os.Stdout, frames); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunTraceViewer(store, runID, width, height); err != nil {
		store.Close()
		traceFail(runID, err)
	}
}

func traceFail(runID int64, err error) {
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no run with id %d\n", runID)
		fmt.Fprintln(os.Stderr, "Run 'tilephys runs' to see recorded runs.")
		os.Exit(1)
	}
	fail("%v", err)
}
