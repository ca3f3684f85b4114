package sinkhole

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/sinkhole/internal/core"
)

// Snapshot is a value copy of everything a renderer needs for one frame.
// It shares no memory with the world.
type Snapshot struct {
	Phase      Phase   `msgpack:"phase"`
	Paused     bool    `msgpack:"paused"`
	Time       float64 `msgpack:"time"`
	Width      float64 `msgpack:"width"`
	Height     float64 `msgpack:"height"`
	Wall       float64 `msgpack:"wall"`
	CameraTop  float64 `msgpack:"camera_top"`
	Score      int     `msgpack:"score"`
	Multiplier float64 `msgpack:"multiplier"`
	Level      int     `msgpack:"level"`

	Player    Player          `msgpack:"player"`
	Layers    []Layer         `msgpack:"layers"`
	Platforms []core.Rect     `msgpack:"platforms"`
	Walking   []Walking       `msgpack:"walking"`
	Flying    []Flying        `msgpack:"flying"`
	Bullets   []Bullet        `msgpack:"bullets"`
	Pickups   []Pickup        `msgpack:"pickups"`
	Lazers    []LazerView     `msgpack:"lazers"`
	Offer     []UpgradeOption `msgpack:"offer"`
}

// LazerView is a lazer with its current warning phase.
type LazerView struct {
	Lazer
	Phase LazerPhase `msgpack:"phase"`
	Band  core.Rect  `msgpack:"band"`
}

// UpgradeOption is one upgrade on offer, with its display text.
type UpgradeOption struct {
	Kind        UpgradeKind `msgpack:"kind"`
	Name        string      `msgpack:"name"`
	Description string      `msgpack:"description"`
}

// Snapshot copies the renderable state of the world.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      w.phase,
		Paused:     w.paused,
		Time:       w.timer,
		Width:      w.cfg.World.Width,
		Height:     w.cfg.World.Height,
		Wall:       w.cfg.World.WallWidth(),
		CameraTop:  w.CameraTop(),
		Score:      w.Score(),
		Multiplier: w.multiplier,
		Level:      w.Level(),
		Player:     w.player,
		Layers:     append([]Layer(nil), w.layers...),
	}

	for i := range w.layers {
		l := &w.layers[i]
		for _, seg := range l.Segments() {
			s.Platforms = append(s.Platforms, w.gen.SegmentRect(l, seg))
		}
	}
	s.Walking = collect(w.walking)
	s.Flying = collect(w.flying)
	s.Bullets = collect(w.bullets)
	s.Pickups = collect(w.pickups)
	for _, z := range w.lazers.All() {
		s.Lazers = append(s.Lazers, LazerView{
			Lazer: *z,
			Phase: z.Phase(w.timer),
			Band:  z.rect(w.cfg.World.Width),
		})
	}
	for _, k := range w.offer {
		info := w.UpgradeInfo(k)
		s.Offer = append(s.Offer, UpgradeOption{Kind: k, Name: info.Name, Description: info.Description})
	}
	return s
}

func collect[T any](p *Pool[T]) []T {
	var out []T
	for _, v := range p.All() {
		out = append(out, *v)
	}
	return out
}

// WriteSnapshot encodes s as MessagePack.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(&s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}
