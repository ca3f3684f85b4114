// sinkhole is a vertical descent platformer for the terminal, a desktop
// window and SSH.
//
// Usage:
//
//	sinkhole play            - Play in the terminal
//	sinkhole menu            - Title screen with the runs viewer
//	sinkhole window          - Play in a desktop window
//	sinkhole sim             - Run the game headless with an autopilot
//	sinkhole serve           - Start SSH server for remote play
//	sinkhole scores          - Show high scores
//	sinkhole runs            - Show stored runs
//	sinkhole upgrades        - Show the upgrade table
//	sinkhole list            - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.sinkhole/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sinkhole/internal/core"
	"github.com/vovakirdan/sinkhole/internal/games/sinkhole"
	"github.com/vovakirdan/sinkhole/internal/storage"
)

const gameID = "sinkhole"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Game flags, shared by every command that starts a run
	flagConfig     string
	flagUpgrades   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sinkhole",
	Short: "Sinkhole - fall, shoot and upgrade your way down",
	Long: `Sinkhole is a vertical descent platformer. Drop through platform
layers, shoot what lives in the shaft and pick an upgrade at every
depth threshold.

Available commands:
  play      - Play in the terminal
  menu      - Title screen with the runs viewer
  window    - Play in a desktop window
  sim       - Run headless with an autopilot
  serve     - Start SSH server for remote play
  scores    - View high scores
  runs      - View stored runs
  upgrades  - Show the upgrade table

Examples:
  sinkhole play
  sinkhole play --difficulty hard --seed 42
  sinkhole window
  sinkhole sim --frames 7200 --dump run.msgpack
  sinkhole serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sinkhole/runs.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(upgradesCmd)
}

// addGameFlags registers the config flags on a command that starts a run.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagUpgrades, "upgrades", "", "Path to custom upgrade table (YAML or CSV)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy (ramp one level behind), normal (default), hard (two levels ahead), fixed (no ramp)")
}

// applyGameFlags hands the config flags to the game package.
func applyGameFlags() {
	sinkhole.SetConfigPath(flagConfig)
	sinkhole.SetUpgradesPath(flagUpgrades)
	sinkhole.SetDifficultyPreset(flagDifficulty)
	sinkhole.SetLogger(newLogger("sinkhole"))
}

// terminalConfig builds a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStoreOrWarn opens the runs database. Commands that can play without
// it get nil and a warning instead of an error.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
