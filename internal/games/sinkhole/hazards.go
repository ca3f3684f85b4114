package sinkhole

import "github.com/vovakirdan/sinkhole/internal/core"

// Lazer is a full-width horizontal band that fires once after a warning.
type Lazer struct {
	Y         float64
	Height    float64
	Created   float64 // game time
	FireDelay float64
}

// LazerPhase is the warning stage a renderer should show.
type LazerPhase int

const (
	LazerWarnFirst LazerPhase = iota
	LazerWarnSecond
	LazerCharging
)

// FiresAt returns the game time the lazer fires.
func (z *Lazer) FiresAt() float64 {
	return z.Created + z.FireDelay
}

// Phase splits the warning period into thirds.
func (z *Lazer) Phase(now float64) LazerPhase {
	if z.FireDelay <= 0 {
		return LazerCharging
	}
	switch elapsed := (now - z.Created) / z.FireDelay; {
	case elapsed < 1.0/3:
		return LazerWarnFirst
	case elapsed < 2.0/3:
		return LazerWarnSecond
	default:
		return LazerCharging
	}
}

// rect returns the band the lazer sweeps across a world of the given width.
func (z *Lazer) rect(width float64) core.Rect {
	return core.NewRect(width/2, z.Y, width, z.Height)
}

// spawnLazer adds a lazer near the camera once its interval has elapsed.
func (w *World) spawnLazer(level int) {
	if !w.ramp.LazerUnlocked(level) || w.timer <= w.lastLazer+w.nextLazer {
		return
	}
	h := w.cfg.World.Height
	w.lazers.Spawn(Lazer{
		Y:         w.maxY - h/4 + w.rng.Float64()*h/2,
		Height:    w.ramp.LazerHeight(level),
		Created:   w.timer,
		FireDelay: w.ramp.LazerFireDelay(level),
	})
	w.lastLazer = w.timer
	w.nextLazer = w.rollLazerInterval()
}

func (w *World) rollLazerInterval() float64 {
	lo, hi := w.cfg.Lazer.MinInterval, w.cfg.Lazer.MaxInterval
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + w.rng.Intn(hi-lo+1))
}

// updateLazers fires due lazers and drops those left far behind.
func (w *World) updateLazers() {
	p := &w.player
	for i, z := range w.lazers.All() {
		if z.Y < w.maxY-w.cfg.World.Height {
			w.lazers.Despawn(i)
			continue
		}
		if w.timer < z.FiresAt() {
			continue
		}
		if core.RectsIntersect(p.Rect(), z.rect(w.cfg.World.Width)) {
			p.hurt(1)
		}
		w.lazers.Despawn(i)
	}
}
