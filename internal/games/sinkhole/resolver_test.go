package sinkhole

import (
	"math"
	"testing"
)

// Default geometry used below: layer unit 100, thickness 9, player 32x96.
// A layer at depth 5 has its top at 495.5 and its underside at 504.5.
const (
	depth5Top    = 495.5
	depth5Bottom = 504.5
)

// physicsWorld returns a world with the given layers, gravity active and
// the camera far enough up that the ceiling never interferes.
func physicsWorld(t *testing.T, layers ...Layer) *World {
	t.Helper()
	w := newTestWorld(t)
	w.layers = layers
	w.timer = 10
	w.maxY = 0
	return w
}

// slab returns a layer with one segment covering [left, right].
func slab(depth int, left, right float64) Layer {
	return Layer{
		Depth:   depth,
		Pattern: PatternPlatformFirst,
		First:   Segment{CenterX: (left + right) / 2, Length: right - left},
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRestingPlayerStaysPut(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900))
	p := &w.player
	p.X, p.Y = 700, depth5Top-p.H/2
	p.Grounded = true

	w.movePlayer(Input{}, 0.016)

	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0", p.VY)
	}
	if p.Y != depth5Top-p.H/2 {
		t.Errorf("Y = %v, expected %v", p.Y, depth5Top-p.H/2)
	}
	if !p.Grounded {
		t.Error("player should stay grounded")
	}
}

func TestLandingFromAbove(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		gap  float64 // distance from feet to platform top
		vy   float64
	}{
		{"center slow", 700, 1, 100},
		{"center fast", 700, 2, 300},
		{"near left end", 510, 0.5, 200},
		{"near right end", 890, 3, 1000},
		{"deep step", 700, 4, 300},
		{"slow drift onto the top", 700, 0.1, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := physicsWorld(t, slab(5, 500, 900))
			p := &w.player
			p.X = tc.x
			p.Y = depth5Top - p.H/2 - tc.gap
			p.VY = tc.vy

			w.movePlayer(Input{}, 0.016)

			if p.VY != 0 {
				t.Errorf("VY = %v, expected 0", p.VY)
			}
			if !approxEqual(p.Y, depth5Top-p.H/2) {
				t.Errorf("Y = %v, expected %v", p.Y, depth5Top-p.H/2)
			}
			if !p.Grounded {
				t.Error("player should be grounded")
			}
		})
	}
}

func TestFallingPastSegmentDoesNotLand(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900))
	p := &w.player
	p.X = 1000
	p.Y = depth5Top - p.H/2 - 1
	p.VY = 300

	w.movePlayer(Input{}, 0.016)

	if p.Grounded || p.VY <= 0 {
		t.Errorf("player beside the segment should keep falling: grounded=%v VY=%v", p.Grounded, p.VY)
	}
}

func TestFacePlantVersusLanding(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64 // player center
		vx        float64
		faceplant bool
		expectX   float64
	}{
		// Rightward toward the left corner of [700, 1100].
		{"right vertical first", 674, depth5Top - 48 - 1, 150, true, 684},
		{"right horizontal first", 683, depth5Top - 48 - 10, 150, false, 698},
		// Leftward toward the right corner of [300, 660].
		{"left vertical first", 686, depth5Top - 48 - 1, -150, true, 676},
		{"left horizontal first", 677, depth5Top - 48 - 10, -150, false, 662},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var l Layer
			if tc.vx > 0 {
				l = slab(5, 700, 1100)
			} else {
				l = slab(5, 300, 660)
			}
			w := physicsWorld(t, l)
			p := &w.player
			p.X, p.Y = tc.x, tc.y
			p.VX, p.VY = tc.vx, 600

			w.movePlayer(Input{}, 0.1)

			if tc.faceplant {
				if p.VX != 0 {
					t.Errorf("VX = %v, expected 0 after face-plant", p.VX)
				}
				if p.Grounded {
					t.Error("face-plant should not ground the player")
				}
			} else {
				if !p.Grounded || !approxEqual(p.Y, depth5Top-p.H/2) {
					t.Errorf("expected landing, got grounded=%v Y=%v", p.Grounded, p.Y)
				}
			}
			if !approxEqual(p.X, tc.expectX) {
				t.Errorf("X = %v, expected %v", p.X, tc.expectX)
			}
		})
	}
}

func TestHeadBonk(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900), slab(7, 500, 900))
	p := &w.player
	p.X, p.Y = 700, 600
	p.VY = -600

	w.movePlayer(Input{}, 0.1)

	if p.Y-p.H/2 < depth5Bottom {
		t.Errorf("head at %v went above the underside %v", p.Y-p.H/2, depth5Bottom)
	}
	if p.VY < 0 {
		t.Errorf("VY = %v, expected the upward motion to stop", p.VY)
	}
}

func TestClimbUpPassesThrough(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900), slab(7, 500, 900))
	p := &w.player
	p.X, p.Y = 700, 600
	p.VY = -600
	p.Upgrades[UpgradeClimbUp] = 1

	w.movePlayer(Input{}, 0.1)

	if p.Y-p.H/2 >= depth5Bottom {
		t.Errorf("head at %v, expected to pass above the underside %v", p.Y-p.H/2, depth5Bottom)
	}
}

func TestWallClamp(t *testing.T) {
	tests := []struct {
		name    string
		x, vx   float64
		expectX float64
	}{
		{"right wall", 1260, 150, 1280 - 16},
		{"left wall", 340, -150, 320 + 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := physicsWorld(t)
			p := &w.player
			p.X, p.Y = tc.x, 1800
			p.VX = tc.vx

			w.movePlayer(Input{}, 0.1)

			if p.X != tc.expectX || p.VX != 0 {
				t.Errorf("X = %v VX = %v, expected X = %v VX = 0", p.X, p.VX, tc.expectX)
			}
		})
	}
}

func TestCeilingClamp(t *testing.T) {
	w := physicsWorld(t)
	p := &w.player
	ceiling := w.maxY - w.cfg.World.Height/2
	p.X, p.Y = 800, ceiling+p.H/2+1
	p.VY = -600

	w.movePlayer(Input{}, 0.1)

	if p.Y-p.H/2 < ceiling {
		t.Errorf("head at %v above the ceiling %v", p.Y-p.H/2, ceiling)
	}
	if p.VY < 0 {
		t.Errorf("VY = %v, expected upward motion to stop", p.VY)
	}
}

func TestGravityGracePeriod(t *testing.T) {
	w := physicsWorld(t)
	p := &w.player
	p.X, p.Y = 800, 1800

	w.timer = 0.5
	w.movePlayer(Input{}, 0.1)
	if p.VY != 0 {
		t.Errorf("VY = %v during grace period, expected 0", p.VY)
	}

	w.timer = 2
	w.movePlayer(Input{}, 0.1)
	if !approxEqual(p.VY, w.cfg.Physics.Gravity*0.1) {
		t.Errorf("VY = %v, expected %v", p.VY, w.cfg.Physics.Gravity*0.1)
	}
}

func TestTerminalVelocity(t *testing.T) {
	w := physicsWorld(t)
	p := &w.player
	p.X, p.Y = 800, 1800
	p.VY = w.cfg.Physics.TerminalVelocity

	w.movePlayer(Input{}, 0.1)

	if p.VY != w.cfg.Physics.TerminalVelocity {
		t.Errorf("VY = %v, expected clamp at %v", p.VY, w.cfg.Physics.TerminalVelocity)
	}
}

func TestAirControl(t *testing.T) {
	w := physicsWorld(t)
	p := &w.player
	p.X, p.Y = 800, 1800

	w.movePlayer(Input{Right: true}, 0.016)
	if p.VX != 0 {
		t.Errorf("VX = %v, expected no steering in the air", p.VX)
	}

	p.Upgrades[UpgradeMidAirControl] = 1
	w.movePlayer(Input{Right: true}, 0.016)
	if p.VX != p.MoveSpeed {
		t.Errorf("VX = %v, expected %v with mid-air control", p.VX, p.MoveSpeed)
	}
}

func TestJumpFromGround(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900))
	p := &w.player
	p.X, p.Y = 700, depth5Top-p.H/2
	p.Grounded = true

	w.movePlayer(Input{Jump: true, JumpPressed: true}, 0.016)

	if p.VY != -p.JumpSpeed {
		t.Errorf("VY = %v, expected %v", p.VY, -p.JumpSpeed)
	}
}

func TestDoubleJump(t *testing.T) {
	w := physicsWorld(t)
	p := &w.player
	p.X, p.Y = 800, 1800
	p.VY = 200
	jump := Input{Jump: true, JumpPressed: true}

	w.movePlayer(jump, 0.016)
	if p.VY < 0 {
		t.Fatal("double jump should need the upgrade")
	}

	p.Upgrades[UpgradeDoubleJump] = 1
	w.movePlayer(jump, 0.016)
	if !p.DoubleJumpUsed || p.VY >= 0 {
		t.Fatalf("expected double jump: used=%v VY=%v", p.DoubleJumpUsed, p.VY)
	}

	p.VY = 200
	w.movePlayer(jump, 0.016)
	if p.VY < 0 {
		t.Error("second double jump should be refused")
	}
}

func TestJumpLeavesTheGround(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900))
	p := &w.player
	p.X, p.Y = 700, depth5Top-p.H/2
	p.Grounded = true
	start := p.Y

	w.movePlayer(Input{Jump: true, JumpPressed: true}, 0.016)
	w.movePlayer(Input{Jump: true}, 0.016)

	if p.Grounded || p.Y >= start {
		t.Errorf("grounded = %v Y = %v, expected to rise from %v", p.Grounded, p.Y, start)
	}
}

func TestLandingClearsAirState(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900))
	p := &w.player
	p.X, p.Y = 700, depth5Top-p.H/2-1
	p.VY = 100
	p.DoubleJumpUsed = true

	w.movePlayer(Input{}, 0.016)

	if !p.Grounded || p.DoubleJumpUsed {
		t.Errorf("grounded = %v doubleJumpUsed = %v, expected a fresh landing", p.Grounded, p.DoubleJumpUsed)
	}
}

func TestClimbDownStartsFallingThrough(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900))
	p := &w.player
	p.X, p.Y = 700, depth5Top-p.H/2
	p.Grounded = true
	p.Upgrades[UpgradeClimbDown] = 1

	w.movePlayer(Input{Drop: true}, 0.016)

	if !p.FallingThrough {
		t.Fatal("expected falling-through")
	}
	if p.VY <= 0 {
		t.Errorf("VY = %v, expected downward motion", p.VY)
	}

	for range 30 {
		w.movePlayer(Input{}, 0.016)
	}
	if p.Y+p.H/2 < depth5Top+50 {
		t.Errorf("feet at %v did not sink through the platform", p.Y+p.H/2)
	}
}

func TestContainmentSideClamp(t *testing.T) {
	w := physicsWorld(t, slab(5, 700, 1100))
	p := &w.player
	p.X, p.Y = 680, 480 // level with the platform, left of it
	p.VX, p.VY = 150, 100

	w.movePlayer(Input{}, 0.1)

	if p.VX != 0 || p.X != 684 {
		t.Errorf("X = %v VX = %v, expected to stop flush at 684", p.X, p.VX)
	}
}

func TestContainmentPopUp(t *testing.T) {
	tests := []struct {
		name           string
		vx             float64
		fallingThrough bool
		popped         bool
	}{
		{"embedded pops up", 150, false, true},
		{"falling through stays", 150, true, false},
		{"embedded still pops up", 0, false, true},
		{"still falling through stays", 0, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := physicsWorld(t, slab(5, 700, 1100))
			p := &w.player
			p.X, p.Y = 800, 452 // feet 4.5 units into the platform
			p.VX, p.VY = tc.vx, 100
			p.FallingThrough = tc.fallingThrough

			w.movePlayer(Input{}, 0.1)

			popped := approxEqual(p.Y, depth5Top-p.H/2)
			if popped != tc.popped {
				t.Errorf("Y = %v, popped = %v, expected %v", p.Y, popped, tc.popped)
			}
			if popped && (!p.Grounded || p.VY != 0) {
				t.Errorf("grounded = %v VY = %v, expected to stand on the platform", p.Grounded, p.VY)
			}
		})
	}
}

func TestHeadBonkDoesNotTeleportUp(t *testing.T) {
	w := physicsWorld(t, slab(5, 500, 900), slab(7, 500, 900))
	p := &w.player
	p.X, p.Y = 700, depth5Bottom+p.H/2
	p.VX = 150
	p.Upgrades[UpgradeMidAirControl] = 1

	w.movePlayer(Input{Right: true}, 0.016)

	if p.Y < depth5Bottom+p.H/2 {
		t.Errorf("Y = %v, player moved above the platform it bumped", p.Y)
	}
}

func TestVerticalFirst(t *testing.T) {
	tests := []struct {
		name     string
		h, v     float64
		dx, dy   float64
		expected bool
	}{
		{"steep fall", 10, 1, 15, 60, true},
		{"shallow fall", 1, 10, 15, 60, false},
		{"no horizontal motion", 10, 10, 0, 5, true},
		{"no vertical motion", 10, 10, 5, 0, false},
		{"tie goes horizontal", 2, 4, 10, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sweep{dx: tc.dx, dy: tc.dy}
			if got := s.verticalFirst(tc.h, tc.v); got != tc.expected {
				t.Errorf("verticalFirst(%v, %v) = %v, expected %v", tc.h, tc.v, got, tc.expected)
			}
		})
	}
}

func TestSpansAlong(t *testing.T) {
	l := Layer{
		First:  Segment{CenterX: 400, Length: 100},
		Second: Segment{CenterX: 1000, Length: 200},
	}

	right := spansAlong(&l, 1)
	if right[0] != (span{near: 350, far: 450}) || right[1] != (span{near: 900, far: 1100}) {
		t.Errorf("rightward spans = %+v", right)
	}

	left := spansAlong(&l, -1)
	if left[0] != (span{near: -1100, far: -900}) || left[1] != (span{near: -450, far: -350}) {
		t.Errorf("leftward spans = %+v", left)
	}
}
