package sinkhole

import "math"

// surfaceEpsilon is how close two surfaces must be to count as touching.
const surfaceEpsilon = 1e-6

// sweep is one frame of player motion projected onto its travel direction.
// Horizontal positions map through u = hSign*x and vertical ones through
// v = vSign*y, so "ahead" is always the larger coordinate and one routine
// handles left, right, up and down.
type sweep struct {
	hSign, vSign float64
	dx, dy       float64 // displacement magnitudes this frame
	lead, trail  float64 // front and back edges along u
	vLead        float64 // front edge along v
}

func newSweep(p *Player, dt float64) sweep {
	s := sweep{
		hSign: sign(p.VX),
		vSign: sign(p.VY),
		dx:    math.Abs(p.VX * dt),
		dy:    math.Abs(p.VY * dt),
	}
	s.lead = s.hSign*p.X + p.W/2
	s.trail = s.hSign*p.X - p.W/2
	s.vLead = s.vSign*p.Y + p.H/2
	return s
}

// verticalFirst reports whether the vertical front edge reaches the surface
// before the horizontal front edge reaches the corner. h and v are the
// remaining distances. An axis with no motion arrives last; an exact tie
// goes to the horizontal axis.
func (s sweep) verticalFirst(h, v float64) bool {
	return h*s.dy > v*s.dx
}

// span is a segment in travel coordinates.
type span struct {
	near, far float64
}

// spansAlong orders the present segments of l along the travel direction.
func spansAlong(l *Layer, hSign float64) []span {
	segs := l.Segments()
	out := make([]span, len(segs))
	for i, seg := range segs {
		c := hSign * seg.CenterX
		out[i] = span{near: c - seg.Length/2, far: c + seg.Length/2}
	}
	if hSign < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// movePlayer advances the player one frame: input, gravity and jumping,
// platform collision, ceiling and walls, then integration. Velocity is
// final before any collision runs so the sweep covers the distance the
// player actually travels.
func (w *World) movePlayer(in Input, dt float64) {
	p := &w.player
	wasGrounded := p.Grounded

	if wasGrounded || p.Has(UpgradeMidAirControl) {
		switch {
		case in.Left && !in.Right:
			p.VX = -p.MoveSpeed
		case in.Right && !in.Left:
			p.VX = p.MoveSpeed
		default:
			p.VX = 0
		}
	}

	if in.Jump && in.JumpPressed && p.Has(UpgradeDoubleJump) && !p.DoubleJumpUsed && !wasGrounded {
		p.VY = -p.JumpSpeed
		p.DoubleJumpUsed = true
	}

	switch {
	case !wasGrounded && w.timer >= w.cfg.Physics.GracePeriod:
		p.VY += w.cfg.Physics.Gravity * dt
	case p.Has(UpgradeClimbDown) && p.VY == 0 && in.Drop:
		p.FallingThrough = true
		p.VY += w.cfg.Physics.Gravity * dt
	}

	if in.Jump && wasGrounded {
		p.VY -= p.JumpSpeed
	}
	p.VY = min(p.VY, w.cfg.Physics.TerminalVelocity)

	p.Grounded = false
	frameDX, frameDY := p.VX*dt, p.VY*dt

	selected := w.resolveLayers(dt)

	// Ceiling: the top of the camera.
	ceiling := w.maxY - w.cfg.World.Height/2
	if p.Y+frameDY-p.H/2 < ceiling {
		p.Y = ceiling + p.H/2
		p.VY = 0
	}

	wall := w.cfg.World.WallWidth()
	switch {
	case p.X+frameDX+p.W/2 > w.cfg.World.Width-wall:
		p.X = w.cfg.World.Width - wall - p.W/2
		p.VX = 0
	case p.X+frameDX-p.W/2 < wall:
		p.X = wall + p.W/2
		p.VX = 0
	}

	if !selected {
		w.containPlayer(dt)
	}

	if p.Grounded {
		p.FallingThrough = false
		p.DoubleJumpUsed = false
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
	w.maxY = max(w.maxY, p.Y)
}

// resolveLayers picks the layer the player is moving toward and resolves
// the frame against it. It reports whether a layer was selected.
func (w *World) resolveLayers(dt float64) bool {
	p := &w.player
	top, bottom := p.Y-p.H/2, p.Y+p.H/2

	switch {
	case p.VY > 0:
		for i := 0; i < min(3, len(w.layers)); i++ {
			l := &w.layers[i]
			if (i == 0 || w.gen.Bottom(&w.layers[i-1]) < top) && bottom < w.gen.Top(l) {
				w.sweepLayer(l, newSweep(p, dt))
				return true
			}
		}
	case p.VY < 0 && !p.Has(UpgradeClimbUp):
		for i := 0; i < min(2, len(w.layers)-1); i++ {
			l := &w.layers[i]
			if w.gen.Bottom(l) < top && bottom < w.gen.Top(&w.layers[i+1]) {
				w.sweepLayer(l, newSweep(p, dt))
				return true
			}
		}
	}
	return false
}

// sweepLayer resolves one frame of motion against the segments of l.
func (w *World) sweepLayer(l *Layer, s sweep) {
	if s.vSign == 0 {
		return
	}

	var surface float64
	if s.vSign > 0 {
		surface = w.gen.Top(l)
	} else {
		surface = -w.gen.Bottom(l)
	}
	crosses := s.vLead+s.dy > surface
	v := surface - s.vLead

	if s.hSign == 0 {
		if crosses && w.overSegment(l) {
			w.stopVertical(l, s)
		}
		return
	}

	spans := spansAlong(l, s.hSign)
	for k := len(spans) - 1; k >= 0; k-- {
		e := spans[k]
		if s.trail > e.far {
			if k+1 < len(spans) {
				w.approach(l, s, spans[k+1], crosses, v)
			}
			return
		}
		if s.lead > e.near {
			if s.trail+s.dx > e.far {
				// Leaving the segment: land only if the surface is reached
				// before the trailing edge clears the far corner.
				if crosses && s.verticalFirst(e.far-s.trail, v) {
					w.stopVertical(l, s)
				}
			} else if crosses {
				w.stopVertical(l, s)
			}
			return
		}
	}
	if len(spans) > 0 {
		w.approach(l, s, spans[0], crosses, v)
	}
}

// approach handles the player moving toward the near corner of e.
func (w *World) approach(l *Layer, s sweep, e span, crosses bool, v float64) {
	if s.lead+s.dx <= e.near || !crosses {
		return
	}
	if s.verticalFirst(e.near-s.lead, v) {
		w.faceplant(s, e)
	} else {
		w.stopVertical(l, s)
	}
}

// stopVertical lands the player on l, or bumps its head on the underside.
func (w *World) stopVertical(l *Layer, s sweep) {
	p := &w.player
	p.VY = 0
	if s.vSign > 0 {
		p.Y = w.gen.Top(l) - p.H/2
		p.Grounded = true
	} else {
		p.Y = w.gen.Bottom(l) + p.H/2
	}
}

// faceplant stops the player flush against the near side of e.
func (w *World) faceplant(s sweep, e span) {
	p := &w.player
	p.VX = 0
	p.X = s.hSign * (e.near - p.W/2)
}

// containPlayer handles frames where the player is not moving toward any
// layer: walking into the side of a platform at the same level, popping out
// of one it is embedded in, or standing on one.
func (w *World) containPlayer(dt float64) {
	p := &w.player
	top, bottom := p.Y-p.H/2, p.Y+p.H/2

	for i := min(3, len(w.layers)) - 1; i >= 0; i-- {
		l := &w.layers[i]
		lt, lb := w.gen.Top(l), w.gen.Bottom(l)

		switch {
		case math.Abs(lt-bottom) <= surfaceEpsilon:
			if p.VY >= 0 && !p.FallingThrough && w.overSegment(l) {
				p.VY = 0
				p.Grounded = true
			}
			return
		case lt < bottom && lb > top && !p.Has(UpgradeClimbUp):
			w.containSides(l, dt)
			return
		}
	}
}

func (w *World) containSides(l *Layer, dt float64) {
	p := &w.player
	hs := sign(p.VX)
	if hs == 0 {
		if !p.FallingThrough && w.overSegment(l) {
			w.popUp(l)
		}
		return
	}
	dx := math.Abs(p.VX * dt)
	lead := hs*p.X + p.W/2
	trail := hs*p.X - p.W/2
	s := sweep{hSign: hs, dx: dx, lead: lead, trail: trail}

	spans := spansAlong(l, hs)
	for k := len(spans) - 1; k >= 0; k-- {
		e := spans[k]
		if trail >= e.far-surfaceEpsilon {
			if k+1 < len(spans) && lead+dx > spans[k+1].near {
				w.faceplant(s, spans[k+1])
			}
			return
		}
		if math.Abs(lead-e.near) <= surfaceEpsilon {
			p.VX = 0
			return
		}
		if lead > e.near {
			if !p.FallingThrough {
				w.popUp(l)
			}
			return
		}
	}
	if len(spans) > 0 && lead+dx > spans[0].near {
		w.faceplant(s, spans[0])
	}
}

// popUp stands an embedded player on top of l.
func (w *World) popUp(l *Layer) {
	p := &w.player
	p.Y = w.gen.Top(l) - p.H/2
	p.VY = 0
	p.Grounded = true
}

// overSegment reports whether the player overlaps a segment of l
// horizontally.
func (w *World) overSegment(l *Layer) bool {
	p := &w.player
	for _, seg := range l.Segments() {
		if p.X+p.W/2 > seg.Left() && seg.Right() > p.X-p.W/2 {
			return true
		}
	}
	return false
}
