package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sinkhole/internal/games/sinkhole"
	"github.com/vovakirdan/sinkhole/internal/platform/headless"
	"github.com/vovakirdan/sinkhole/internal/storage"
)

var (
	flagFrames   int
	flagDumpPath string
	flagSave     bool
	flagVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless with an autopilot",
	Long: `Step a run without a display. An autopilot weaves across the shaft,
fires straight down and takes random upgrades. The run ends on defeat,
at the frame limit or on Ctrl+C.

The same --seed always plays the same run, which makes sim useful for
replaying a seed and for checking config changes.

Examples:
  sinkhole sim
  sinkhole sim --seed 42 --frames 0
  sinkhole sim --difficulty hard --dump final.msgpack
  sinkhole sim --save --verbose`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagFrames, "frames", headless.DefaultOptions().Frames, "Frame limit (0 = until defeat)")
	simCmd.Flags().StringVar(&flagDumpPath, "dump", "", "Write the final snapshot as MessagePack to this file")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Store the run in the runs database")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every upgrade taken")
}

func runSim(_ *cobra.Command, _ []string) {
	applyGameFlags()
	logger := newLogger("sinkhole-sim")
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, table, err := sinkhole.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := headless.DefaultOptions()
	opts.Frames = flagFrames
	if flagFPS > 0 {
		opts.TPS = flagFPS
	}

	world := sinkhole.NewWorld(cfg, table, seed)
	logger.Info("run started", "seed", seed, "frames", opts.Frames)

	res, err := headless.Run(ctx, world, headless.NewAutopilot(seed), opts, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		os.Exit(1)
	}

	s := res.Summary
	logger.Info("run over",
		"defeated", res.Defeated,
		"frames", res.Frames,
		"score", s.Score,
		"depth", int(s.Depth),
		"kills", s.Kills,
		"upgrades", s.Upgrades,
		"multiplier", fmt.Sprintf("%.2f", s.Multiplier),
		"elapsed", res.Elapsed.Round(time.Millisecond),
	)

	if flagDumpPath != "" {
		if err := dumpSnapshot(flagDumpPath, world.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("snapshot written", "path", flagDumpPath)
	}

	if flagSave {
		saveSimRun(s, logger)
	}
}

func dumpSnapshot(path string, snap sinkhole.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create dump file: %w", err)
	}
	if err := sinkhole.WriteSnapshot(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func saveSimRun(s sinkhole.Summary, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(s.Record("sim"))
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}
