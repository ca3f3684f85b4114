package sinkhole

import (
	"math/rand"

	"github.com/vovakirdan/sinkhole/internal/config"
	"github.com/vovakirdan/sinkhole/internal/core"
)

// Pattern tells how a layer starts at the left wall.
type Pattern int

const (
	PatternPlatformFirst Pattern = iota
	PatternGapFirst
	PatternEmpty
)

func (p Pattern) String() string {
	switch p {
	case PatternPlatformFirst:
		return "platform-first"
	case PatternGapFirst:
		return "gap-first"
	case PatternEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Segment is one horizontal platform span. A zero length means absent.
type Segment struct {
	CenterX float64
	Length  float64
}

// Present reports whether the segment exists.
func (s Segment) Present() bool { return s.Length > 0 }

// Left returns the x-coordinate of the left end.
func (s Segment) Left() float64 { return s.CenterX - s.Length/2 }

// Right returns the x-coordinate of the right end.
func (s Segment) Right() float64 { return s.CenterX + s.Length/2 }

// Layer is one row of the platform field. First is always left of Second.
type Layer struct {
	Depth   int
	Pattern Pattern
	First   Segment
	Second  Segment
	Gap1    float64 // gap after First (platform-first) or before it (gap-first)
	Gap2    float64
}

// Segments returns the present segments, left to right.
func (l *Layer) Segments() []Segment {
	segs := make([]Segment, 0, 2)
	if l.First.Present() {
		segs = append(segs, l.First)
	}
	if l.Second.Present() {
		segs = append(segs, l.Second)
	}
	return segs
}

// Span returns the total width the layer accounts for.
func (l *Layer) Span() float64 {
	return l.First.Length + l.Gap1 + l.Second.Length + l.Gap2
}

// Generator fills platform layers.
type Generator struct {
	rng         *rand.Rand
	minPlatform int
	minGap      int
	playable    int
	wall        float64
	unit        float64
	thickness   float64

	// Falling band after each upgrade threshold, in depth indices.
	emptyStart  float64
	emptyPeriod float64
	emptyWidth  float64

	openingDepth int
	spacing      int
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg config.SinkholeConfig, rng *rand.Rand) *Generator {
	unit := cfg.Platforms.LayerUnit
	return &Generator{
		rng:          rng,
		minPlatform:  cfg.Platforms.MinPlatform,
		minGap:       cfg.Platforms.MinGap,
		playable:     int(cfg.World.PlayableSpace()),
		wall:         cfg.World.WallWidth(),
		unit:         unit,
		thickness:    cfg.World.Height * cfg.Platforms.ThicknessFraction,
		emptyStart:   cfg.Upgrades.FirstThreshold / unit,
		emptyPeriod:  cfg.Upgrades.NextThreshold / unit,
		emptyWidth:   cfg.Upgrades.FallingBand / unit,
		openingDepth: cfg.Platforms.FirstDepth,
		spacing:      cfg.Platforms.Spacing,
	}
}

// between returns a random int in [lo, hi], or lo when the range is empty.
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// forcedEmpty reports whether depth falls in the band of empty layers that
// follows the upgrade threshold for the given upgrade level.
func (g *Generator) forcedEmpty(depth, level int) bool {
	start := g.emptyStart + g.emptyPeriod*float64(level)
	d := float64(depth)
	return d > start && d < start+g.emptyWidth
}

// Generate fills l for the given depth index. level is the number of
// upgrades taken so far.
func (g *Generator) Generate(l *Layer, depth, level int) {
	*l = Layer{Depth: depth}

	pattern := Pattern(g.rng.Intn(2))
	if g.forcedEmpty(depth, level) {
		pattern = PatternEmpty
	}

	switch pattern {
	case PatternEmpty:
		l.Pattern = PatternEmpty
		l.Gap1 = float64(g.playable)
	case PatternPlatformFirst:
		g.platformFirst(l)
	default:
		g.gapFirst(l)
	}

	g.applyOpening(l)
}

func (g *Generator) platformFirst(l *Layer) {
	minP, minG := g.minPlatform, g.minGap
	rem := g.playable

	p1 := g.between(minP, rem-minG)
	rem -= p1

	var g1, p2, g2 int
	if rem < minP+minG {
		g1 = rem
	} else {
		g1 = g.between(minG, rem-minP)
		rem -= g1
		if rem < minP+minG {
			p2 = rem
		} else {
			p2 = g.between(minP, rem-minG)
			g2 = rem - p2
		}
	}

	l.Pattern = PatternPlatformFirst
	l.First = Segment{CenterX: g.wall + float64(p1)/2, Length: float64(p1)}
	if p2 > 0 {
		l.Second = Segment{CenterX: g.wall + float64(p1+g1) + float64(p2)/2, Length: float64(p2)}
	}
	l.Gap1, l.Gap2 = float64(g1), float64(g2)
}

func (g *Generator) gapFirst(l *Layer) {
	minP, minG := g.minPlatform, g.minGap
	rem := g.playable

	g1 := g.between(minG, rem-minP)
	rem -= g1

	var p1, g2, p2 int
	if rem < minP+minG {
		p1 = rem
	} else {
		p1 = g.between(minP, rem-minG)
		rem -= p1
		if rem < minP+minG {
			g2 = rem
		} else {
			g2 = g.between(minG, rem-minP)
			p2 = rem - g2
		}
	}

	l.Pattern = PatternGapFirst
	l.First = Segment{CenterX: g.wall + float64(g1) + float64(p1)/2, Length: float64(p1)}
	if p2 > 0 {
		l.Second = Segment{CenterX: g.wall + float64(g1+p1+g2) + float64(p2)/2, Length: float64(p2)}
	}
	l.Gap1, l.Gap2 = float64(g1), float64(g2)
}

// applyOpening overwrites the two hand-authored layers the run starts on:
// a centered platform, then two platforms flanking a gap under it.
func (g *Generator) applyOpening(l *Layer) {
	edge := float64(g.playable) * 5 / 16   // 300 on the default playfield
	middle := float64(g.playable) * 3 / 8 // 360

	switch l.Depth {
	case g.openingDepth:
		*l = Layer{
			Depth:   l.Depth,
			Pattern: PatternGapFirst,
			First:   Segment{CenterX: g.wall + edge + middle/2, Length: middle},
			Gap1:    edge,
			Gap2:    edge,
		}
	case g.openingDepth + g.spacing:
		*l = Layer{
			Depth:   l.Depth,
			Pattern: PatternPlatformFirst,
			First:   Segment{CenterX: g.wall + edge/2, Length: edge},
			Second:  Segment{CenterX: g.wall + edge + middle + edge/2, Length: edge},
			Gap1:    middle,
		}
	}
}

// Scroll drops the nearest layer, shifts the rest down one slot and
// generates the vacated last slot at newDepth.
func (g *Generator) Scroll(layers []Layer, newDepth, level int) {
	if len(layers) == 0 {
		return
	}
	copy(layers, layers[1:])
	g.Generate(&layers[len(layers)-1], newDepth, level)
}

// SurfaceY returns the world y of the layer's center line.
func (g *Generator) SurfaceY(l *Layer) float64 {
	return float64(l.Depth) * g.unit
}

// Top returns the world y of the layer's upper surface.
func (g *Generator) Top(l *Layer) float64 {
	return g.SurfaceY(l) - g.thickness/2
}

// Bottom returns the world y of the layer's underside.
func (g *Generator) Bottom(l *Layer) float64 {
	return g.SurfaceY(l) + g.thickness/2
}

// SegmentRect returns the collision rectangle of a segment of l.
func (g *Generator) SegmentRect(l *Layer, s Segment) core.Rect {
	return core.NewRect(s.CenterX, g.SurfaceY(l), s.Length, g.thickness)
}

// Thickness returns the platform thickness.
func (g *Generator) Thickness() float64 {
	return g.thickness
}
