package sinkhole

import "github.com/vovakirdan/sinkhole/internal/core"

// Pickup is a square health pickup dropped by walkers.
type Pickup struct {
	X, Y float64
	Size float64
}

// Rect returns the pickup's collision square.
func (k *Pickup) Rect() core.Rect {
	return core.NewRect(k.X, k.Y, k.Size, k.Size)
}

// dropPickup rolls the drop chance at (x, y).
func (w *World) dropPickup(x, y float64) {
	if w.rng.Intn(100) >= w.cfg.Walking.DropChance {
		return
	}
	w.pickups.Spawn(Pickup{X: x, Y: y, Size: w.cfg.Pickups.Size})
}

// updatePickups collects at most one pickup per frame, and only when the
// player is hurt. Pickups far above the camera are dropped.
func (w *World) updatePickups() {
	p := &w.player
	collected := false
	for i, k := range w.pickups.All() {
		if k.Y < w.maxY-w.cfg.World.Height {
			w.pickups.Despawn(i)
			continue
		}
		if collected || p.Health >= p.MaxHealth {
			continue
		}
		if core.RectsIntersect(p.Rect(), k.Rect()) {
			p.Health = min(p.Health+w.cfg.Pickups.Heal, p.MaxHealth)
			w.pickups.Despawn(i)
			collected = true
		}
	}
}
