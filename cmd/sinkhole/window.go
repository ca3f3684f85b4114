package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sinkhole/internal/config"
	"github.com/vovakirdan/sinkhole/internal/games/sinkhole"
	"github.com/vovakirdan/sinkhole/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Sinkhole in a desktop window. Keys are read as held, and the
mouse aims.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  S/Down           - Drop through a platform
  Mouse/F          - Aim and fire
  1/2/3            - Pick an upgrade
  P/Esc            - Pause
  R                - Restart (after defeat)
  Q                - Quit

Examples:
  sinkhole window
  sinkhole window --scale 2
  sinkhole window --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", window.DefaultOptions().Scale, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	applyGameFlags()
	logger := newLogger("sinkhole")

	cfg, table, err := sinkhole.LoadConfig()
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultSinkholeConfig()
		config.ApplySinkholePreset(&cfg, config.ParsePreset(flagDifficulty))
		table, _ = config.LoadUpgrades("")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	opts := window.DefaultOptions()
	opts.Scale = flagScale
	if flagFPS > 0 {
		opts.TPS = flagFPS
	}
	if user := os.Getenv("USER"); user != "" {
		opts.Player = user
	}

	game := window.New(sinkhole.NewWorld(cfg, table, seed), store, logger, opts)
	if err := window.Run(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
