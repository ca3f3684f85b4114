// Package window runs Sinkhole in a desktop window with Ebitengine. Unlike
// the terminal front-end it sees real key state and the mouse, so input
// maps one to one onto the simulation.
package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sinkhole/internal/core"
	"github.com/vovakirdan/sinkhole/internal/games/sinkhole"
	"github.com/vovakirdan/sinkhole/internal/storage"
)

var (
	colorBackground = color.RGBA{12, 10, 16, 255}
	colorWall       = color.RGBA{48, 44, 52, 255}
	colorPlatform   = color.RGBA{139, 90, 43, 255}
	colorPlayer     = color.RGBA{80, 220, 230, 255}
	colorWalker     = color.RGBA{210, 50, 50, 255}
	colorFlyer      = color.RGBA{200, 60, 200, 255}
	colorBullet     = color.RGBA{250, 230, 90, 255}
	colorPickup     = color.RGBA{90, 230, 110, 255}
	colorLazerWarn  = color.RGBA{255, 140, 0, 90}
	colorLazerBeam  = color.RGBA{255, 40, 40, 200}
	colorShade      = color.RGBA{0, 0, 0, 170}
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int // logical width in pixels
	Height int // logical height in pixels
	Scale  float64
	TPS    int
	Player string // name stored with finished runs
}

// DefaultOptions returns a half-resolution view of the default world.
func DefaultOptions() Options {
	return Options{
		Title:  "Sinkhole",
		Width:  800,
		Height: 450,
		Scale:  1.5,
		TPS:    60,
		Player: "local",
	}
}

// Game implements ebiten.Game over a sinkhole World.
type Game struct {
	world  *sinkhole.World
	store  *storage.Store
	logger *log.Logger
	opts   Options
	saved  bool
}

// New wraps world for Ebitengine. store may be nil.
func New(world *sinkhole.World, store *storage.Store, logger *log.Logger, opts Options) *Game {
	return &Game{
		world:  world,
		store:  store,
		logger: logger,
		opts:   opts,
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}

func (g *Game) input() sinkhole.Input {
	cx, cy := ebiten.CursorPosition()
	wx, wy := g.world.Viewport(g.opts.Width, g.opts.Height).ToWorld(float64(cx), float64(cy))

	return sinkhole.Input{
		Left:        anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:       anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Jump:        anyPressed(jumpKeys...),
		JumpPressed: anyJustPressed(jumpKeys...),
		Drop:        anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Fire:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeyF),
		Pause:       anyJustPressed(ebiten.KeyP, ebiten.KeyEscape),
		CursorX:     wx,
		CursorY:     wy,
	}
}

// Update advances the world by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.world.Phase() {
	case sinkhole.PhaseDefeat:
		if !g.saved {
			g.saveRun()
			g.saved = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.world.Reset(g.world.Seed() + 1)
			g.saved = false
			g.logger.Info("run started", "seed", g.world.Seed())
		}
		return nil

	case sinkhole.PhaseUpgrade:
		for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
			if inpututil.IsKeyJustPressed(k) && g.world.Choose(i) {
				g.logger.Debug("upgrade chosen", "upgrades", g.world.Player().TotalUpgrades)
				break
			}
		}
		return nil
	}

	g.world.Step(g.input(), 1/float64(ebiten.TPS()))
	return nil
}

func (g *Game) saveRun() {
	summary := g.world.Summary()
	g.logger.Info("run over", "score", summary.Score, "depth", int(summary.Depth), "kills", summary.Kills)
	if g.store == nil {
		return
	}

	if _, err := g.store.SaveScore("sinkhole", summary.Score); err != nil {
		g.logger.Warn("could not save score", "error", err)
	}
	if _, err := g.store.SaveRun(summary.Record(g.opts.Player)); err != nil {
		g.logger.Warn("could not save run", "error", err)
	}
}

func fillRect(dst *ebiten.Image, v sinkhole.Viewport, r core.Rect, c color.Color) {
	x, y, w, h := v.Rect(r)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func fillCircle(dst *ebiten.Image, v sinkhole.Viewport, c core.Circle, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(v.X(c.X)), float32(v.Y(c.Y)), float32(c.R*v.SX), clr, true)
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := g.world.Snapshot()
	v := s.Viewport(g.opts.Width, g.opts.Height)
	w, h := float32(g.opts.Width), float32(g.opts.Height)

	wall := float32(v.X(s.Wall))
	vector.DrawFilledRect(screen, 0, 0, wall, h, colorWall, false)
	vector.DrawFilledRect(screen, w-wall, 0, wall, h, colorWall, false)

	for _, r := range s.Platforms {
		fillRect(screen, v, r, colorPlatform)
	}
	for _, z := range s.Lazers {
		c := colorLazerWarn
		if z.Phase == sinkhole.LazerCharging {
			c = colorLazerBeam
		}
		fillRect(screen, v, z.Band, c)
	}
	for _, k := range s.Pickups {
		fillRect(screen, v, k.Rect(), colorPickup)
	}
	for _, e := range s.Walking {
		fillRect(screen, v, e.Rect(), colorWalker)
	}
	for _, e := range s.Flying {
		fillCircle(screen, v, e.Circle(), colorFlyer)
	}
	for _, b := range s.Bullets {
		fillCircle(screen, v, b.Circle(), colorBullet)
	}
	fillRect(screen, v, s.Player.Rect(), colorPlayer)

	p := s.Player
	hud := fmt.Sprintf("HP %d/%d  Depth %d  Score %d  x%.2f  Kills %d  Lv %d",
		p.Health, p.MaxHealth, int(g.world.Depth()), s.Score, s.Multiplier, p.Kills, s.Level)
	ebitenutil.DebugPrintAt(screen, hud, int(wall)+6, 4)

	switch {
	case s.Phase == sinkhole.PhaseUpgrade:
		lines := make([]string, 0, len(s.Offer)+2)
		lines = append(lines, "CHOOSE AN UPGRADE", "")
		for i, o := range s.Offer {
			lines = append(lines, fmt.Sprintf("%d) %s  %s", i+1, o.Name, o.Description))
		}
		g.drawOverlay(screen, lines...)
	case s.Phase == sinkhole.PhaseDefeat:
		g.drawOverlay(screen, "YOU DIED", "", fmt.Sprintf("Score: %d", s.Score), "R to restart, Q to quit")
	case s.Paused:
		g.drawOverlay(screen, "PAUSED", "", "P to resume")
	}
}

// drawOverlay shades the playfield and prints lines in its middle.
func (g *Game) drawOverlay(screen *ebiten.Image, lines ...string) {
	w, h := g.opts.Width, g.opts.Height
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), colorShade, false)

	// The debug font is 6x16.
	const charW, lineH = 6, 16
	top := h/2 - len(lines)*lineH/2
	for i, l := range lines {
		x := (w - len(l)*charW) / 2
		ebitenutil.DebugPrintAt(screen, strings.TrimRight(l, " "), max(x, 0), top+i*lineH)
	}
}

// Layout fixes the logical resolution; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(int(float64(g.opts.Width)*g.opts.Scale), int(float64(g.opts.Height)*g.opts.Scale))
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.TPS)

	g.logger.Info("run started", "seed", g.world.Seed())
	return ebiten.RunGame(g)
}
