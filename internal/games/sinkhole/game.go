// Package sinkhole implements a vertical descent platformer. The player
// falls through procedurally generated platform layers, shoots enemies and
// picks upgrades at fixed depths. World holds the simulation and knows
// nothing about terminals; Game adapts it to the registry.
package sinkhole

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sinkhole/internal/config"
	"github.com/vovakirdan/sinkhole/internal/core"
	"github.com/vovakirdan/sinkhole/internal/registry"
)

// Visual characters for rendering
const (
	WallChar     = '▒'
	PlatformChar = '▀'
	PlayerChar   = '█'
	WalkerChar   = '▓'
	FlyerChar    = '●'
	BulletChar   = '•'
	PickupChar   = '+'
	LazerWarn    = '╌'
	LazerBeam    = '═'
)

var (
	configPath       string
	upgradesPath     string
	difficultyPreset config.DifficultyPreset

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sinkhole"})
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetUpgradesPath sets a custom upgrade text table (YAML or CSV).
func SetUpgradesPath(path string) {
	upgradesPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger replaces the logger games report config problems to.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig loads the game and upgrade configuration the same way Reset
// does, returning any error instead of falling back to defaults.
func LoadConfig() (config.SinkholeConfig, config.UpgradeTable, error) {
	cfg, err := config.LoadSinkhole(configPath)
	if err != nil {
		return config.SinkholeConfig{}, nil, err
	}
	if difficultyPreset != "" {
		config.ApplySinkholePreset(&cfg, difficultyPreset)
	}
	table, err := config.LoadUpgrades(upgradesPath)
	if err != nil {
		return config.SinkholeConfig{}, nil, err
	}
	return cfg, table, nil
}

// Game adapts a World to the terminal platform.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
}

// New creates a new Sinkhole game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "sinkhole"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sinkhole"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, table, err := LoadConfig()
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultSinkholeConfig()
		if difficultyPreset != "" {
			config.ApplySinkholePreset(&cfg, difficultyPreset)
		}
		table = nil
	}

	if g.world == nil || g.world.Config() != cfg {
		g.world = NewWorld(cfg, table, runtime.Seed)
		return
	}
	g.world.upgrades = table
	g.world.Reset(runtime.Seed)
}

// Resize updates the screen size used to map pointer cells. The run
// continues.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
}

// Summary describes the current run.
func (g *Game) Summary() Summary {
	return g.world.Summary()
}

// World returns the simulation behind the game.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world

	switch w.Phase() {
	case PhaseDefeat:
		if in.Has(core.ActionRestart) {
			w.Reset(w.Seed() + 1)
		}
		return core.StepResult{State: g.State()}
	case PhaseUpgrade:
		for i, a := range []core.Action{core.ActionChoose1, core.ActionChoose2, core.ActionChoose3} {
			if in.Has(a) {
				w.Choose(i)
				break
			}
		}
		return core.StepResult{State: g.State()}
	}

	w.Step(g.input(in), g.runtime.FrameTime())
	return core.StepResult{State: g.State()}
}

// input translates platform actions into simulation input. Without a
// pointer the player aims straight down.
func (g *Game) input(in core.InputFrame) Input {
	p := g.world.Player()
	out := Input{
		Left:        in.IsHeld(core.ActionLeft),
		Right:       in.IsHeld(core.ActionRight),
		Jump:        in.IsHeld(core.ActionJump),
		JumpPressed: in.Has(core.ActionJump),
		Drop:        in.IsHeld(core.ActionDrop),
		Fire:        in.IsHeld(core.ActionFire),
		Pause:       in.Has(core.ActionPause),
		CursorX:     p.X,
		CursorY:     p.Y + p.H,
	}
	if in.HasPointer && g.runtime.ScreenW > 0 && g.runtime.ScreenH > 0 {
		out.CursorX, out.CursorY = g.toWorld(in.PointerX, in.PointerY)
	}
	return out
}

// toWorld returns the world point at the center of a screen cell.
func (g *Game) toWorld(col, row int) (float64, float64) {
	v := g.world.Viewport(g.runtime.ScreenW, g.runtime.ScreenH)
	return v.ToWorld(float64(col)+0.5, float64(row)+0.5)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Phase() == PhaseDefeat,
		Paused:   g.world.Paused(),
		Choosing: g.world.Phase() == PhaseUpgrade,
	}
}

// view maps world coordinates of one snapshot onto screen cells.
type view struct {
	Viewport
	snap Snapshot
}

func newView(s Snapshot, dst *core.Screen) view {
	return view{Viewport: s.Viewport(dst.Width(), dst.Height()), snap: s}
}

func (v view) col(x float64) int { return int(math.Floor(v.X(x))) }
func (v view) row(y float64) int { return int(math.Floor(v.Y(y))) }

// area returns the cells covered by r, at least one cell in each direction.
func (v view) area(r core.Rect) core.Area {
	x0, x1 := v.col(r.Left()), v.col(r.Right())
	y0, y1 := v.row(r.Top()), v.row(r.Bottom())
	return core.NewArea(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	s := g.world.Snapshot()
	v := newView(s, dst)

	wallCols := v.col(s.Wall)
	for y := range dst.Height() {
		for x := range wallCols {
			dst.SetColored(x, y, WallChar, core.ColorGray)
			dst.SetColored(dst.Width()-1-x, y, WallChar, core.ColorGray)
		}
	}

	for _, r := range s.Platforms {
		a := v.area(r)
		dst.DrawHLine(a.X, a.Y, a.W, PlatformChar, core.ColorBrown)
	}

	for _, z := range s.Lazers {
		g.drawLazer(dst, v, z)
	}
	for _, k := range s.Pickups {
		dst.FillArea(v.area(k.Rect()), PickupChar, core.ColorBrightGreen)
	}
	for _, e := range s.Walking {
		dst.FillArea(v.area(e.Rect()), WalkerChar, core.ColorRed)
	}
	for _, e := range s.Flying {
		c := e.Circle()
		dst.SetColored(v.col(c.X), v.row(c.Y), FlyerChar, core.ColorMagenta)
	}
	for _, b := range s.Bullets {
		dst.SetColored(v.col(b.X), v.row(b.Y), BulletChar, core.ColorYellow)
	}
	dst.FillArea(v.area(s.Player.Rect()), PlayerChar, core.ColorCyan)

	g.drawHUD(dst, s)

	switch {
	case s.Phase == PhaseUpgrade:
		g.drawOffer(dst, s)
	case s.Phase == PhaseDefeat:
		g.drawCenteredMessage(dst, core.ColorBrightRed, "YOU DIED",
			fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case s.Paused:
		g.drawCenteredMessage(dst, core.ColorWhite, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawLazer(dst *core.Screen, v view, z LazerView) {
	ch, color := LazerWarn, core.ColorOrange
	switch z.Phase {
	case LazerWarnFirst, LazerWarnSecond:
		// Blink while warning.
		if int(v.snap.Time*6)%2 == 1 {
			return
		}
	case LazerCharging:
		ch, color = LazerBeam, core.ColorBrightRed
	}
	a := v.area(z.Band)
	for y := a.Y; y < a.Bottom(); y++ {
		dst.DrawHLine(a.X, y, a.W, ch, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen, s Snapshot) {
	p := s.Player
	hearts := strings.Repeat("♥", p.Health) + strings.Repeat("♡", max(p.MaxHealth-p.Health, 0))
	left := fmt.Sprintf(" %s  Depth: %d  Score: %d ", hearts, int(g.world.Depth()), s.Score)
	dst.DrawTextColored(1, 0, left, core.ColorWhite)

	right := fmt.Sprintf(" x%.2f  Kills: %d  Lv %d ", s.Multiplier, p.Kills, s.Level)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)
}

func (g *Game) drawOffer(dst *core.Screen, s Snapshot) {
	lines := make([]string, 0, len(s.Offer))
	for i, o := range s.Offer {
		line := fmt.Sprintf("%d) %s", i+1, o.Name)
		if o.Description != "" {
			line += " - " + o.Description
		}
		lines = append(lines, line)
	}
	g.drawCenteredMessage(dst, core.ColorBrightCyan, "CHOOSE AN UPGRADE", lines...)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, color core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW = min(boxW+4, w)
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewArea(boxX, boxY, boxW, boxH)
	dst.FillArea(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, color)
	for i, l := range lines {
		dst.DrawText(boxX+2, boxY+3+i, l)
	}
}

// Register the game with the registry
func init() {
	registry.Register("sinkhole", func() registry.Game {
		return New()
	})
}
