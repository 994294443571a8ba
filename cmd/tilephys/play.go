package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilephys/internal/core"
	"github.com/vovakirdan/tilephys/internal/games/platformer"
	"github.com/vovakirdan/tilephys/internal/platform/tui"
	"github.com/vovakirdan/tilephys/internal/registry"
	"github.com/vovakirdan/tilephys/internal/storage"
)

var flagPlayConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the tile platformer",
	Long: `Run, jump and reach the exit. Every tick is resolved against the
level tiles; the top bar shows the floor, ceiling and wall contacts.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump (only when standing on a tile)
  P/Esc            - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  tilephys play
  tilephys play --config ./my-level.yaml
  tilephys play --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayConfig, "config", "", "Path to custom platformer config YAML")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tilephys list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	platformer.SetConfigPath(flagPlayConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
