package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sinkhole/internal/platform/tui"
	"github.com/vovakirdan/sinkhole/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title screen",
	Long: `Start Sinkhole on its title screen.

Pick Descend to play, Runs to browse stored runs. Quitting a run returns
to the title screen.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Runs
  Q            - Quit

Examples:
  sinkhole menu
  sinkhole menu --difficulty easy
  sinkhole menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	applyGameFlags()

	store := openStoreOrWarn()
	cfg := terminalConfig()

	for {
		choice, updated, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = updated

		if choice == tui.MenuQuit {
			break
		}

		if choice == tui.MenuRuns {
			goBack, err := tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}

		// A fresh seed per run unless one was pinned.
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, runCfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
