package sinkhole

import (
	"github.com/vovakirdan/sinkhole/internal/core"
)

// Walking is a ground enemy that patrols one platform segment.
type Walking struct {
	X, Y       float64
	W, H       float64
	Health     int
	Speed      float64
	MinX, MaxX float64 // segment edges
	Dir        float64 // -1 left, +1 right
}

// Rect returns the walker's collision rectangle.
func (e *Walking) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Flying is an airborne enemy that homes in on the player.
type Flying struct {
	X, Y     float64
	Diameter float64
	Health   int
	Speed    float64
}

// Circle returns the flyer's collision circle.
func (e *Flying) Circle() core.Circle {
	return core.NewCircle(e.X, e.Y, e.Diameter)
}

// spawnWalking rolls the walker spawn for a freshly generated layer.
func (w *World) spawnWalking(l *Layer, level int) {
	segs := l.Segments()
	if len(segs) == 0 {
		return
	}
	if w.rng.Intn(100) >= w.ramp.WalkingChance(level) {
		return
	}

	cfg := w.cfg.Walking
	width := w.cfg.World.Width * cfg.WidthFraction
	height := width * cfg.HeightRatio
	count := 1 + w.rng.Intn(w.ramp.WalkingBatchMax(level))

	for range count {
		seg := segs[w.rng.Intn(len(segs))]
		dir := 1.0
		if w.rng.Intn(2) == 0 {
			dir = -1
		}
		// The whole body starts on the segment; one too short gets it centered.
		room := max(seg.Length-width, 0)
		w.walking.Spawn(Walking{
			X:      seg.CenterX - room/2 + w.rng.Float64()*room,
			Y:      w.gen.Top(l) - height/2,
			W:      width,
			H:      height,
			Health: w.ramp.WalkingHealth(level),
			Speed:  w.ramp.WalkingSpeed(level),
			MinX:   seg.Left(),
			MaxX:   seg.Right(),
			Dir:    dir,
		})
	}
}

// spawnFlying adds a flyer below the screen when the ramp allows it.
func (w *World) spawnFlying(level int) {
	cfg := w.cfg.Flying
	if !w.ramp.FlyingUnlocked(level) || w.timer-w.lastFlying < cfg.Interval {
		return
	}
	if w.flying.ActiveCount() >= cfg.MaxActive {
		return
	}
	w.lastFlying = w.timer
	w.flying.Spawn(Flying{
		X:        float64(w.rng.Intn(101)) / 100 * w.cfg.World.Width,
		Y:        w.maxY + w.cfg.World.Height,
		Diameter: w.cfg.World.Width * cfg.DiameterFraction,
		Health:   w.ramp.FlyingHealth(level),
		Speed:    w.ramp.FlyingSpeed(level),
	})
}

// updateWalking despawns, moves and resolves player contact for walkers.
func (w *World) updateWalking(dt float64) {
	cfg := w.cfg.Walking
	p := &w.player
	limit := w.maxY - w.cfg.World.Height/2

	for i, e := range w.walking.All() {
		if e.Y < limit {
			w.walking.Despawn(i)
			continue
		}

		if core.Distance(p.X, p.Y, e.X, e.Y) < cfg.DetectRange {
			if dir := sign(p.X - e.X); dir != 0 {
				e.Dir = dir
				e.X += dir * e.Speed * cfg.ChaseMultiplier * dt
				e.X = core.ClampF(e.X, e.MinX+e.W/2, e.MaxX-e.W/2)
			}
		} else {
			e.X += e.Dir * e.Speed * dt
			switch {
			case e.X-e.W/2-cfg.PatrolMargin < e.MinX:
				e.Dir = 1
			case e.X+e.W/2+cfg.PatrolMargin > e.MaxX:
				e.Dir = -1
			}
		}

		if core.RectsIntersect(p.Rect(), e.Rect()) {
			p.hurt(1)
			w.walking.Despawn(i)
		}
	}
}

// updateFlying despawns, moves and resolves player contact for flyers.
func (w *World) updateFlying(dt float64) {
	p := &w.player
	limit := w.maxY - w.cfg.World.Height/2

	for i, e := range w.flying.All() {
		if e.Y < limit {
			w.flying.Despawn(i)
			continue
		}

		if dx, dy, _, ok := core.Direction(e.X, e.Y, p.X, p.Y); ok {
			e.X += dx * e.Speed * dt
			e.Y += dy * e.Speed * dt
		}

		if core.CircleRectIntersect(e.Circle(), p.Rect()) {
			p.hurt(1)
			w.flying.Despawn(i)
		}
	}
}

// creditKill counts a kill and refreshes the score multiplier every ten.
func (w *World) creditKill() {
	w.player.Kills++
	if w.player.Kills%10 == 0 {
		w.multiplier = 1 + float64(w.player.Kills)/100
	}
}
