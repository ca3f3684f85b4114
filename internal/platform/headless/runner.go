// Package headless steps a sinkhole World with no display attached. It
// drives soak runs, seed replays and snapshot dumps from the command line.
package headless

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sinkhole/internal/games/sinkhole"
)

// Pilot supplies the input for each frame.
type Pilot interface {
	Input(w *sinkhole.World, frame int) sinkhole.Input
	// Pick returns the index of the upgrade to take from offer.
	Pick(offer []sinkhole.UpgradeKind) int
}

// Autopilot weaves across the shaft, jumps now and then and fires
// straight down. Its choices come from its own seeded source, so a run
// is repeatable for a given world seed and pilot seed.
type Autopilot struct {
	rng  *rand.Rand
	left bool
	turn int // frame of the next direction change
}

// NewAutopilot creates a pilot seeded with seed.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{rng: rand.New(rand.NewSource(seed))}
}

// Input implements Pilot.
func (a *Autopilot) Input(w *sinkhole.World, frame int) sinkhole.Input {
	p := w.Player()
	cfg := w.Config().World

	if frame >= a.turn {
		a.left = !a.left
		a.turn = frame + 30 + a.rng.Intn(90)
	}
	// Turn back before grinding against a wall.
	switch {
	case p.X-p.W < cfg.WallWidth()*1.5:
		a.left = false
	case p.X+p.W > cfg.Width-cfg.WallWidth()*1.5:
		a.left = true
	}

	jump := p.Grounded && a.rng.Intn(40) == 0
	return sinkhole.Input{
		Left:        a.left,
		Right:       !a.left,
		Jump:        jump,
		JumpPressed: jump,
		Fire:        true,
		CursorX:     p.X,
		CursorY:     p.Y + cfg.Height,
	}
}

// Pick implements Pilot.
func (a *Autopilot) Pick(offer []sinkhole.UpgradeKind) int {
	if len(offer) == 0 {
		return 0
	}
	return a.rng.Intn(len(offer))
}

// Options configures a headless run.
type Options struct {
	Frames   int // frame limit; 0 runs until defeat
	TPS      int // simulated ticks per second
	LogEvery int // frames between progress lines; 0 disables them
}

// DefaultOptions returns ten simulated minutes at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Frames:   36000,
		TPS:      60,
		LogEvery: 3600,
	}
}

// Result is the outcome of Run.
type Result struct {
	Summary  sinkhole.Summary
	Frames   int
	Choices  int // upgrades taken
	Defeated bool
	Elapsed  time.Duration // wall clock
}

// Run steps w until the player is defeated, the frame limit is reached or
// ctx is done. A cancelled run returns the partial result with ctx.Err().
func Run(ctx context.Context, w *sinkhole.World, pilot Pilot, opts Options, logger *log.Logger) (Result, error) {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	dt := 1 / float64(opts.TPS)
	start := time.Now()

	var res Result
	finish := func() Result {
		res.Summary = w.Summary()
		res.Defeated = w.Phase() == sinkhole.PhaseDefeat
		res.Elapsed = time.Since(start)
		return res
	}

	for opts.Frames <= 0 || res.Frames < opts.Frames {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}

		switch w.Phase() {
		case sinkhole.PhaseDefeat:
			return finish(), nil
		case sinkhole.PhaseUpgrade:
			offer := w.Offer()
			i := pilot.Pick(offer)
			if !w.Choose(i) {
				return finish(), fmt.Errorf("headless: pilot picked upgrade %d of %d", i, len(offer))
			}
			res.Choices++
			logger.Debug("upgrade taken", "frame", res.Frames, "upgrade", offer[i])
			continue
		}

		w.Step(pilot.Input(w, res.Frames), dt)
		res.Frames++

		if opts.LogEvery > 0 && res.Frames%opts.LogEvery == 0 {
			logger.Info("progress",
				"frame", res.Frames,
				"depth", int(w.Depth()),
				"score", w.Score(),
				"health", w.Player().Health,
			)
		}
	}
	return finish(), nil
}
