package sinkhole

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/sinkhole/internal/config"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultSinkholeConfig(), nil, 1)
}

// scripted returns a repeatable input pattern for frame i.
func scripted(w *World, i int) Input {
	p := w.Player()
	return Input{
		Left:        i%240 >= 120,
		Right:       i%240 < 120,
		Jump:        i%90 < 5,
		JumpPressed: i%90 == 0,
		Fire:        true,
		CursorX:     p.X + 50,
		CursorY:     p.Y + 200,
	}
}

func TestNewWorldInitialState(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	if p.X != 800 || p.Y != 350 {
		t.Errorf("player at (%v, %v), expected (800, 350)", p.X, p.Y)
	}
	if p.W != 32 || p.H != 96 {
		t.Errorf("player size %vx%v, expected 32x96", p.W, p.H)
	}
	if p.Health != 3 || p.MaxHealth != 3 {
		t.Errorf("health %d/%d, expected 3/3", p.Health, p.MaxHealth)
	}
	if w.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", w.Phase())
	}

	for i, l := range w.layers {
		if l.Depth != 5+2*i {
			t.Errorf("layer %d depth = %d, expected %d", i, l.Depth, 5+2*i)
		}
	}
}

func TestWorldDeterminism(t *testing.T) {
	a := NewWorld(config.DefaultSinkholeConfig(), nil, 42)
	b := NewWorld(config.DefaultSinkholeConfig(), nil, 42)

	for i := range 1200 {
		a.Step(scripted(a, i), 1.0/60)
		b.Step(scripted(b, i), 1.0/60)
		if a.Phase() == PhaseUpgrade {
			a.Choose(0)
			b.Choose(0)
		}
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("worlds with the same seed and input diverged")
	}
}

func TestResetReproducesRun(t *testing.T) {
	fresh := NewWorld(config.DefaultSinkholeConfig(), nil, 7)
	w := NewWorld(config.DefaultSinkholeConfig(), nil, 7)
	for i := range 300 {
		w.Step(scripted(w, i), 1.0/60)
	}
	w.Reset(7)

	if !reflect.DeepEqual(w.Snapshot(), fresh.Snapshot()) {
		t.Error("Reset did not restore the initial state")
	}
}

func TestScrollCadence(t *testing.T) {
	w := newTestWorld(t)

	w.player.Y = 950
	w.scrollLayers(0)
	if w.layers[0].Depth != 5 {
		t.Fatalf("scrolled too early: first depth %d", w.layers[0].Depth)
	}

	w.player.Y = 1000
	w.scrollLayers(0)
	if w.layers[0].Depth != 7 || w.layers[len(w.layers)-1].Depth != 17 {
		t.Errorf("depths %d..%d, expected 7..17", w.layers[0].Depth, w.layers[len(w.layers)-1].Depth)
	}

	// Skipping buckets in one frame catches up one layer at a time.
	w.player.Y = 1500
	w.scrollLayers(0)
	for i, l := range w.layers {
		if l.Depth != 11+2*i {
			t.Errorf("layer %d depth = %d, expected %d", i, l.Depth, 11+2*i)
		}
	}
	if w.lastThreshold != 15 {
		t.Errorf("lastThreshold = %d, expected 15", w.lastThreshold)
	}
}

func TestUpgradePhase(t *testing.T) {
	w := newTestWorld(t)
	w.maxY = 2001
	w.walking.Spawn(Walking{X: 800, Y: 2100, W: 48, H: 72, Health: 10})
	w.flying.Spawn(Flying{X: 800, Y: 2400, Diameter: 48, Health: 10})
	w.lazers.Spawn(Lazer{Y: 2000, Height: 50, FireDelay: 3})
	w.bullets.Spawn(Bullet{X: 800, Y: 2000})
	w.pickups.Spawn(Pickup{X: 800, Y: 2000, Size: 50})

	w.checkPhase()

	if w.Phase() != PhaseUpgrade {
		t.Fatalf("Phase() = %v, expected upgrade", w.Phase())
	}
	if w.MaxY() != 2000 || w.player.Y != 2000 {
		t.Errorf("maxY = %v, player.Y = %v, expected both at 2000", w.MaxY(), w.player.Y)
	}

	offer := w.Offer()
	if len(offer) != 3 {
		t.Fatalf("len(Offer()) = %d, expected 3", len(offer))
	}
	seen := map[UpgradeKind]bool{}
	for _, k := range offer {
		if seen[k] {
			t.Errorf("upgrade %v offered twice", k)
		}
		seen[k] = true
	}

	timer := w.Time()
	w.Step(Input{Right: true}, 0.1)
	if w.Time() != timer {
		t.Error("Step should not advance time during the upgrade phase")
	}

	if w.Choose(3) {
		t.Error("Choose(3) should be refused")
	}
	w.player.VY = 400
	if !w.Choose(1) {
		t.Fatal("Choose(1) refused")
	}

	p := w.Player()
	if p.TotalUpgrades != 1 || p.Upgrades[offer[1]] != 1 {
		t.Errorf("upgrade not applied: total=%d level=%d", p.TotalUpgrades, p.Upgrades[offer[1]])
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0 after choosing", p.VY)
	}
	if w.walking.ActiveCount()+w.flying.ActiveCount()+w.lazers.ActiveCount()+w.bullets.ActiveCount() != 0 {
		t.Error("enemies, hazards and bullets should be cleared")
	}
	if w.pickups.ActiveCount() != 1 {
		t.Error("pickups should survive the upgrade")
	}
	if w.Phase() != PhasePlaying || w.Offer() != nil {
		t.Errorf("expected play to resume, phase %v offer %v", w.Phase(), w.Offer())
	}
	if w.Choose(0) {
		t.Error("Choose outside the upgrade phase should be refused")
	}

	w.maxY = 6999
	w.checkPhase()
	if w.Phase() != PhasePlaying {
		t.Error("second threshold is 7000")
	}
	w.maxY = 7000.5
	w.checkPhase()
	if w.Phase() != PhaseUpgrade {
		t.Error("expected the second upgrade past 7000")
	}
}

func TestDefeat(t *testing.T) {
	w := newTestWorld(t)
	w.player.Health = 0
	w.checkPhase()

	if w.Phase() != PhaseDefeat {
		t.Fatalf("Phase() = %v, expected defeat", w.Phase())
	}

	timer := w.Time()
	w.Step(Input{Right: true}, 0.1)
	if w.Time() != timer {
		t.Error("Step should be a no-op after defeat")
	}
}

func TestPauseToggle(t *testing.T) {
	w := newTestWorld(t)

	w.Step(Input{Pause: true}, 0.1)
	if !w.Paused() || w.Time() != 0 {
		t.Fatalf("expected pause without time passing: paused=%v time=%v", w.Paused(), w.Time())
	}

	w.Step(Input{}, 0.1)
	if w.Time() != 0 {
		t.Error("time passed while paused")
	}

	w.Step(Input{Pause: true}, 0.1)
	if w.Paused() || w.Time() != 0.1 {
		t.Errorf("expected resume: paused=%v time=%v", w.Paused(), w.Time())
	}
}

func TestScoreAndMultiplier(t *testing.T) {
	w := newTestWorld(t)
	w.maxY = 1347

	if w.Score() != 1000 {
		t.Errorf("Score() = %d, expected 1000", w.Score())
	}

	for range 9 {
		w.creditKill()
	}
	if w.Multiplier() != 1 {
		t.Errorf("Multiplier() = %v after 9 kills, expected 1", w.Multiplier())
	}

	w.creditKill()
	if !approxEqual(w.Multiplier(), 1.1) {
		t.Errorf("Multiplier() = %v after 10 kills, expected 1.1", w.Multiplier())
	}
	if w.Score() != 1100 {
		t.Errorf("Score() = %d, expected 1100", w.Score())
	}

	w.maxY = 0
	if w.Score() != 0 {
		t.Errorf("Score() = %d above the start, expected 0", w.Score())
	}
}

func TestSummary(t *testing.T) {
	w := NewWorld(config.DefaultSinkholeConfig(), nil, 99)
	w.maxY = 847
	w.player.Kills = 4
	w.player.TotalUpgrades = 2
	w.timer = 12.5

	s := w.Summary()
	expected := Summary{Seed: 99, Score: 500, Depth: 500, Kills: 4, Upgrades: 2, Multiplier: 1, Duration: 12.5}
	if s != expected {
		t.Errorf("Summary() = %+v, expected %+v", s, expected)
	}
}

func TestLongRunStaysConsistent(t *testing.T) {
	w := NewWorld(config.DefaultSinkholeConfig(), nil, 3)

	for i := range 3000 {
		w.Step(scripted(w, i), 1.0/60)
		switch w.Phase() {
		case PhaseUpgrade:
			w.Choose(i % 3)
		case PhaseDefeat:
			w.Reset(int64(i))
		}

		p := w.Player()
		wall := w.cfg.World.WallWidth()
		if p.X-p.W/2 < wall-1e-9 || p.X+p.W/2 > w.cfg.World.Width-wall+1e-9 {
			t.Fatalf("frame %d: player at x=%v left the playfield", i, p.X)
		}
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("frame %d: health %d/%d", i, p.Health, p.MaxHealth)
		}
		for li := range w.layers {
			if got := w.layers[li].Span(); got != w.cfg.World.PlayableSpace() {
				t.Fatalf("frame %d: layer %d spans %v", i, li, got)
			}
		}
	}
}
