// Package core provides fundamental types and utilities shared by the
// simulation and the front-ends. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in world units, positioned by its center.
type Rect struct {
	X, Y float64 // Center
	W, H float64 // Width and height
}

// NewRect creates a rectangle centered at (x, y).
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X - r.W/2 }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W/2 }

// Top returns the y-coordinate of the top edge. Y grows downward.
func (r Rect) Top() float64 { return r.Y - r.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H/2 }

// Intersects reports whether r and other overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return RectsIntersect(r, other)
}

// Contains reports whether the point (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return PointInRect(x, y, r)
}

// Circle is a circle in world units.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// NewCircle creates a circle from its center and diameter.
func NewCircle(x, y, diameter float64) Circle {
	return Circle{X: x, Y: y, R: diameter / 2}
}

// PointInRect reports whether (x, y) lies inside r, edges included.
func PointInRect(x, y float64, r Rect) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// PointInCircle reports whether (x, y) lies strictly inside c.
func PointInCircle(x, y float64, c Circle) bool {
	return Distance(x, y, c.X, c.Y) < c.R
}

// CirclesIntersect reports whether the distance between the centers is less
// than the sum of the radii.
func CirclesIntersect(a, b Circle) bool {
	return Distance(a.X, a.Y, b.X, b.Y) < a.R+b.R
}

// RectsIntersect is a separating-axis test on both dimensions.
func RectsIntersect(a, b Rect) bool {
	if a.Left() >= b.Right() || b.Left() >= a.Right() {
		return false
	}
	if a.Top() >= b.Bottom() || b.Top() >= a.Bottom() {
		return false
	}
	return true
}

// CircleRectIntersect reports whether c and r overlap.
//
// When the circle's center falls within the rectangle's horizontal span the
// test reduces to a vertical overlap check, and likewise for the vertical
// span. Otherwise the nearest region is a corner, and the corners are
// tested against the circle.
func CircleRectIntersect(c Circle, r Rect) bool {
	inX := c.X >= r.Left() && c.X <= r.Right()
	inY := c.Y >= r.Top() && c.Y <= r.Bottom()

	switch {
	case inX && inY:
		return true
	case inX:
		return c.Y+c.R > r.Top() && c.Y-c.R < r.Bottom()
	case inY:
		return c.X+c.R > r.Left() && c.X-c.R < r.Right()
	}

	return PointInCircle(r.Left(), r.Top(), c) ||
		PointInCircle(r.Right(), r.Top(), c) ||
		PointInCircle(r.Left(), r.Bottom(), c) ||
		PointInCircle(r.Right(), r.Bottom(), c)
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Direction returns the unit vector pointing from (x1, y1) to (x2, y2) and
// the distance between them. ok is false when the points coincide; the
// returned vector is then zero and must not be used.
func Direction(x1, y1, x2, y2 float64) (dx, dy, dist float64, ok bool) {
	dist = Distance(x1, y1, x2, y2)
	if dist == 0 {
		return 0, 0, 0, false
	}
	return (x2 - x1) / dist, (y2 - y1) / dist, dist, true
}

// Area is an integer cell rectangle on a Screen, positioned by its top-left corner.
type Area struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewArea creates a new cell rectangle.
func NewArea(x, y, w, h int) Area {
	return Area{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (a Area) Right() int {
	return a.X + a.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (a Area) Bottom() int {
	return a.Y + a.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
