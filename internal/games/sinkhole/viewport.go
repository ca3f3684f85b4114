package sinkhole

import "github.com/vovakirdan/sinkhole/internal/core"

// Viewport maps world coordinates onto a drawing surface measured in
// terminal cells or pixels. The surface shows one world-sized window whose
// top edge is Top.
type Viewport struct {
	Top    float64 // world y at the top edge
	SX, SY float64 // surface units per world unit
}

// NewViewport fits a worldW x worldH window starting at top onto a
// width x height surface.
func NewViewport(worldW, worldH, top float64, width, height int) Viewport {
	return Viewport{
		Top: top,
		SX:  float64(width) / worldW,
		SY:  float64(height) / worldH,
	}
}

// Viewport returns the current camera fitted to a width x height surface.
func (w *World) Viewport(width, height int) Viewport {
	return NewViewport(w.cfg.World.Width, w.cfg.World.Height, w.CameraTop(), width, height)
}

// Viewport returns the snapshot's camera fitted to a width x height surface.
func (s Snapshot) Viewport(width, height int) Viewport {
	return NewViewport(s.Width, s.Height, s.CameraTop, width, height)
}

// X projects a world x onto the surface.
func (v Viewport) X(x float64) float64 { return x * v.SX }

// Y projects a world y onto the surface.
func (v Viewport) Y(y float64) float64 { return (y - v.Top) * v.SY }

// Rect projects r and returns its surface origin and size.
func (v Viewport) Rect(r core.Rect) (x, y, w, h float64) {
	return v.X(r.Left()), v.Y(r.Top()), r.W * v.SX, r.H * v.SY
}

// ToWorld maps a surface point back into the world.
func (v Viewport) ToWorld(px, py float64) (float64, float64) {
	return px / v.SX, v.Top + py/v.SY
}
