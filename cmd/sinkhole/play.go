package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sinkhole/internal/platform/tui"
	"github.com/vovakirdan/sinkhole/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Terminals only report key presses, so a tap keeps moving for a moment.
Click to aim and fire when your terminal reports the mouse.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump (twice with double jump)
  S/Down           - Drop through a platform
  F/Click          - Fire
  1/2/3            - Pick an upgrade
  P/Esc            - Pause
  R                - Restart (after defeat)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the lowest level, progresses to max
  normal - Start at 30% of max, progresses
  hard   - Start at 70% of max, progresses
  fixed  - No progression, stays at the config's starting level

Examples:
  sinkhole play
  sinkhole play --difficulty hard
  sinkhole play --seed 42 --fps 30
  sinkhole play --config ./my-sinkhole.yaml --upgrades ./upgrades.csv`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStoreOrWarn()

	runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
