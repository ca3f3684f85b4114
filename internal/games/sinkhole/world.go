package sinkhole

import (
	"math/rand"

	"github.com/vovakirdan/sinkhole/internal/config"
	"github.com/vovakirdan/sinkhole/internal/storage"
)

// Phase is the top-level state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseUpgrade       // waiting for Choose
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseUpgrade:
		return "upgrade"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Input is the control state for one frame. Held flags stay true while the
// control is down; Pressed flags are true only on the frame it went down.
type Input struct {
	Left, Right bool
	Jump        bool
	JumpPressed bool
	Drop        bool
	Fire        bool
	Pause       bool // pressed: toggles pause

	CursorX, CursorY float64 // world coordinates
}

// World is one run of the game: the player, the rolling platform window and
// every entity pool. It is not safe for concurrent use.
type World struct {
	cfg        config.SinkholeConfig
	upgrades   config.UpgradeTable
	difficulty *config.DifficultyManager
	ramp       Ramp
	seed       int64
	rng        *rand.Rand
	gen        *Generator

	player        Player
	layers        []Layer
	lastThreshold int

	bullets *Pool[Bullet]
	pickups *Pool[Pickup]
	lazers  *Pool[Lazer]
	walking *Pool[Walking]
	flying  *Pool[Flying]

	timer      float64
	maxY       float64
	multiplier float64

	phase  Phase
	paused bool
	offer  []UpgradeKind

	lastFlying float64
	lastLazer  float64
	nextLazer  float64
}

// NewWorld creates a world ready to play. upgrades supplies display text only.
func NewWorld(cfg config.SinkholeConfig, upgrades config.UpgradeTable, seed int64) *World {
	w := &World{
		cfg:        cfg,
		upgrades:   upgrades,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		ramp:       NewRamp(cfg),
		bullets:    NewPool[Bullet](cfg.Pools.Bullets),
		pickups:    NewPool[Pickup](cfg.Pools.Pickups),
		lazers:     NewPool[Lazer](cfg.Pools.Lazers),
		walking:    NewPool[Walking](cfg.Pools.Walking),
		flying:     NewPool[Flying](cfg.Pools.Flying),
	}
	w.Reset(seed)
	return w
}

// Reset starts a new run with the given seed.
func (w *World) Reset(seed int64) {
	w.seed = seed
	w.rng = rand.New(rand.NewSource(seed))
	w.gen = NewGenerator(w.cfg, w.rng)

	w.player = newPlayer(w.cfg)
	w.layers = make([]Layer, w.cfg.Platforms.Layers)
	for i := range w.layers {
		w.gen.Generate(&w.layers[i], w.cfg.Platforms.FirstDepth+i*w.cfg.Platforms.Spacing, 0)
	}
	w.lastThreshold = w.cfg.Platforms.InitialThreshold

	w.bullets.Clear()
	w.pickups.Clear()
	w.lazers.Clear()
	w.walking.Clear()
	w.flying.Clear()

	w.timer = 0
	w.maxY = 0
	w.multiplier = 1
	w.phase = PhasePlaying
	w.paused = false
	w.offer = nil
	w.lastFlying = 0
	w.lastLazer = 0
	w.nextLazer = w.rollLazerInterval()
}

// Step advances the world by dt seconds. It does nothing while paused,
// choosing an upgrade or defeated.
func (w *World) Step(in Input, dt float64) {
	if in.Pause && w.phase == PhasePlaying {
		w.paused = !w.paused
	}
	if w.paused || w.phase != PhasePlaying || dt <= 0 {
		return
	}

	w.timer += dt
	level := w.Level()

	w.scrollLayers(level)
	w.movePlayer(in, dt)
	w.spawnFlying(level)
	w.spawnLazer(level)
	w.updatePickups()
	w.updateLazers()
	w.updateBullets(in, dt)
	w.updateWalking(dt)
	w.updateFlying(dt)

	w.checkPhase()
}

// scrollLayers brings in new layers as the player descends, one per
// spacing step the player has passed.
func (w *World) scrollLayers(level int) {
	pc := w.cfg.Platforms
	bucket := (int(w.player.Y)/int(pc.LayerUnit))/pc.Spacing*pc.Spacing + 1
	for w.lastThreshold < bucket {
		w.lastThreshold += pc.Spacing
		w.gen.Scroll(w.layers, pc.LookAhead*pc.Spacing+w.lastThreshold, w.player.TotalUpgrades)
		w.spawnWalking(&w.layers[len(w.layers)-1], level)
	}
}

func (w *World) checkPhase() {
	if w.player.Health <= 0 {
		w.phase = PhaseDefeat
		return
	}
	threshold := w.nextThreshold()
	if w.maxY > threshold {
		w.maxY = threshold
		w.player.Y = threshold
		w.offer = offerUpgrades(w.rng, &w.player, w.cfg.Upgrades.Offered)
		w.phase = PhaseUpgrade
	}
}

func (w *World) nextThreshold() float64 {
	u := w.cfg.Upgrades
	return u.FirstThreshold + float64(w.player.TotalUpgrades)*u.NextThreshold
}

// Choose takes the i-th offered upgrade and resumes play. Hazards, enemies
// and bullets are cleared; pickups stay. It reports whether the choice was
// accepted.
func (w *World) Choose(i int) bool {
	if w.phase != PhaseUpgrade || i < 0 || i >= len(w.offer) {
		return false
	}
	applyUpgrade(&w.player, w.offer[i], w.cfg.Upgrades)
	w.player.VY = 0
	w.lazers.Clear()
	w.walking.Clear()
	w.flying.Clear()
	w.bullets.Clear()
	w.offer = nil
	w.phase = PhasePlaying
	return true
}

// Offer returns the upgrades on offer, or nil outside the upgrade phase.
func (w *World) Offer() []UpgradeKind {
	return append([]UpgradeKind(nil), w.offer...)
}

// UpgradeInfo returns the display text for an upgrade kind.
func (w *World) UpgradeInfo(k UpgradeKind) config.UpgradeInfo {
	return w.upgrades.Lookup(int(k))
}

// Level returns the current difficulty level.
func (w *World) Level() int {
	return w.difficulty.Level(w.player.TotalUpgrades)
}

// Phase returns the current phase.
func (w *World) Phase() Phase { return w.phase }

// Paused reports whether play is paused.
func (w *World) Paused() bool { return w.paused }

// Time returns the game time in seconds.
func (w *World) Time() float64 { return w.timer }

// Seed returns the seed of the current run.
func (w *World) Seed() int64 { return w.seed }

// Config returns the configuration the world was built with.
func (w *World) Config() config.SinkholeConfig { return w.cfg }

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// MaxY returns the deepest point the player has reached.
func (w *World) MaxY() float64 { return w.maxY }

// CameraTop returns the world y shown at the top of the screen.
func (w *World) CameraTop() float64 {
	return w.maxY - w.cfg.World.Height/2
}

// Depth returns how far below the start the player has been.
func (w *World) Depth() float64 {
	return max(w.maxY-w.cfg.World.ScoreOffset, 0)
}

// Multiplier returns the kill-based score multiplier.
func (w *World) Multiplier() float64 { return w.multiplier }

// Score returns depth times the kill multiplier, never below zero.
func (w *World) Score() int {
	return max(int((w.maxY-w.cfg.World.ScoreOffset)*w.multiplier), 0)
}

// Summary describes a run for the scoreboard.
type Summary struct {
	Seed       int64
	Score      int
	Depth      float64
	Kills      int
	Upgrades   int
	Multiplier float64
	Duration   float64 // seconds of play
}

// Record converts the summary into a stored run for player.
func (s Summary) Record(player string) storage.RunRecord {
	return storage.RunRecord{
		Player:     player,
		Seed:       s.Seed,
		Score:      s.Score,
		Depth:      s.Depth,
		Kills:      s.Kills,
		Upgrades:   s.Upgrades,
		Multiplier: s.Multiplier,
		Duration:   s.Duration,
	}
}

// Summary returns the result of the run so far.
func (w *World) Summary() Summary {
	return Summary{
		Seed:       w.seed,
		Score:      w.Score(),
		Depth:      w.Depth(),
		Kills:      w.player.Kills,
		Upgrades:   w.player.TotalUpgrades,
		Multiplier: w.multiplier,
		Duration:   w.timer,
	}
}
