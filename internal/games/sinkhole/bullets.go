package sinkhole

import "github.com/vovakirdan/sinkhole/internal/core"

// Bullet is a player projectile. Speed and size are copied from the player
// when fired, so later upgrades do not change bullets in flight.
type Bullet struct {
	X, Y       float64
	DirX, DirY float64 // unit vector
	Speed      float64
	Diameter   float64
	Traveled   float64
}

// Circle returns the bullet's collision circle.
func (b *Bullet) Circle() core.Circle {
	return core.NewCircle(b.X, b.Y, b.Diameter)
}

// fire spawns a bullet toward the cursor when the fire delay has elapsed.
func (w *World) fire(in Input) {
	p := &w.player
	if !in.Fire || p.FireRate <= 0 || w.timer-p.LastShot <= 1/p.FireRate {
		return
	}
	mx, my := p.Muzzle()
	dx, dy, _, ok := core.Direction(mx, my, in.CursorX, in.CursorY)
	if !ok {
		return
	}
	if w.bullets.Spawn(Bullet{
		X: mx, Y: my,
		DirX: dx, DirY: dy,
		Speed:    p.ProjectileSpeed,
		Diameter: p.ProjectileSize,
	}) >= 0 {
		p.LastShot = w.timer
	}
}

// updateBullets moves bullets and resolves their hits. A bullet stops at
// the first thing it hits.
func (w *World) updateBullets(in Input, dt float64) {
	w.fire(in)

	wall := w.cfg.World.WallWidth()
	top := w.maxY - w.cfg.World.Height/2
	bottom := w.maxY + w.cfg.World.Height/2
	maxRange := w.cfg.Bullets.MaxRange

	for i, b := range w.bullets.All() {
		step := b.Speed * dt
		b.X += b.DirX * step
		b.Y += b.DirY * step
		b.Traveled += step

		if b.X < wall || b.X > w.cfg.World.Width-wall || b.Y < top || b.Y > bottom {
			w.bullets.Despawn(i)
			continue
		}
		if maxRange > 0 && b.Traveled > maxRange {
			w.bullets.Despawn(i)
			continue
		}
		if !w.player.Has(UpgradePiercing) && w.bulletHitsPlatform(b) {
			w.bullets.Despawn(i)
			continue
		}
		if w.bulletHitsWalking(b) || w.bulletHitsFlying(b) {
			w.bullets.Despawn(i)
		}
	}
}

func (w *World) bulletHitsPlatform(b *Bullet) bool {
	c := b.Circle()
	for li := range w.layers {
		l := &w.layers[li]
		for _, seg := range l.Segments() {
			if core.CircleRectIntersect(c, w.gen.SegmentRect(l, seg)) {
				return true
			}
		}
	}
	return false
}

func (w *World) bulletHitsWalking(b *Bullet) bool {
	c := b.Circle()
	for i, e := range w.walking.All() {
		if !core.CircleRectIntersect(c, e.Rect()) {
			continue
		}
		e.Health -= w.player.Damage
		if e.Health <= 0 {
			w.walking.Despawn(i)
			w.creditKill()
			w.dropPickup(e.X, e.Y)
		}
		return true
	}
	return false
}

func (w *World) bulletHitsFlying(b *Bullet) bool {
	c := b.Circle()
	for i, e := range w.flying.All() {
		if !core.CirclesIntersect(c, e.Circle()) {
			continue
		}
		e.Health -= w.player.Damage
		if e.Health <= 0 {
			w.flying.Despawn(i)
			w.creditKill()
		}
		return true
	}
	return false
}
