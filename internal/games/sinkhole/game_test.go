package sinkhole

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sinkhole/internal/config"
	"github.com/vovakirdan/sinkhole/internal/core"
	"github.com/vovakirdan/sinkhole/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("sinkhole") {
		t.Fatal("sinkhole should be registered")
	}
	g, err := registry.Create("sinkhole")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "sinkhole" || g.Title() != "Sinkhole" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameResetReportsBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	bad := filepath.Join(t.TempDir(), "sinkhole.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	prevLogger, prevPath := logger, configPath
	t.Cleanup(func() {
		logger = prevLogger
		configPath = prevPath
	})
	SetLogger(log.New(&buf))
	SetConfigPath(bad)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if !strings.Contains(buf.String(), "could not load config") {
		t.Errorf("log = %q, expected a config warning", buf.String())
	}
	if !strings.Contains(buf.String(), bad) {
		t.Errorf("log = %q, expected the config path", buf.String())
	}
	if g.World().Config() != config.DefaultSinkholeConfig() {
		t.Error("expected the default config after a load error")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Step(core.NewInputFrame())
	g.Render(screen)
	out := screen.String()

	for _, r := range []rune{PlayerChar, PlatformChar, WallChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("rendered screen has no %q", r)
		}
	}
	if !strings.Contains(out, "Score:") {
		t.Error("rendered screen has no HUD")
	}
}

func TestGameStepMovesPlayer(t *testing.T) {
	g := newTestGame(t)
	start := g.World().Player().X

	// The player hangs in the air during the grace period, lands, then runs.
	for range 180 {
		in := core.NewInputFrame()
		in.Hold(core.ActionRight)
		g.Step(in)
	}

	if g.World().Player().X <= start {
		t.Errorf("player did not move right: %v -> %v", start, g.World().Player().X)
	}
	if g.World().Time() <= 0 {
		t.Error("time did not advance")
	}
}

func TestGameUpgradeChoice(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	w.maxY = 2001
	w.checkPhase()
	if !g.State().Choosing {
		t.Error("State().Choosing should be set during the upgrade phase")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionChoose2)
	res := g.Step(in)
	if res.State.Choosing {
		t.Error("Step should report the choice as made")
	}

	if w.Phase() != PhasePlaying || w.Player().TotalUpgrades != 1 {
		t.Errorf("phase %v, upgrades %d after choosing", w.Phase(), w.Player().TotalUpgrades)
	}

	screen := core.NewScreen(80, 24)
	w.maxY = 7001
	w.checkPhase()
	g.Render(screen)
	if !strings.Contains(screen.String(), "CHOOSE AN UPGRADE") {
		t.Error("upgrade box not rendered")
	}
}

func TestGameRestartAfterDefeat(t *testing.T) {
	g := newTestGame(t)
	w := g.World()
	w.player.Health = 0
	w.checkPhase()

	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.State().GameOver || w.Player().Health != 3 {
		t.Error("restart did not start a new run")
	}
}

func TestGamePointerAim(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.SetPointer(40, 12)

	x, y := g.toWorld(40, 12)
	got := g.input(in)

	if got.CursorX != x || got.CursorY != y {
		t.Errorf("cursor (%v, %v), expected (%v, %v)", got.CursorX, got.CursorY, x, y)
	}
	if x < 800 || x > 820 {
		t.Errorf("column 40 of 80 maps to x=%v", x)
	}

	p := g.World().Player()
	noPointer := g.input(core.NewInputFrame())
	if noPointer.CursorX != p.X || noPointer.CursorY <= p.Y {
		t.Error("without a pointer the player should aim down")
	}
}
