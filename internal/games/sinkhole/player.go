package sinkhole

import (
	"github.com/vovakirdan/sinkhole/internal/config"
	"github.com/vovakirdan/sinkhole/internal/core"
)

// Player is the single player of a run.
type Player struct {
	X, Y   float64 // Center
	VX, VY float64 // Velocity, units per second; VY > 0 falls
	W, H   float64

	Health    int
	MaxHealth int
	Damage    int

	MoveSpeed       float64
	JumpSpeed       float64
	FireRate        float64 // shots per second
	ProjectileSize  float64 // diameter
	ProjectileSpeed float64

	Upgrades      [upgradeKinds]int
	TotalUpgrades int
	Kills         int

	Grounded       bool
	DoubleJumpUsed bool
	FallingThrough bool
	LastShot       float64
}

func newPlayer(cfg config.SinkholeConfig) Player {
	w := cfg.World.Width * cfg.Player.WidthFraction
	return Player{
		X:               cfg.World.Width / 2,
		Y:               cfg.World.Height/2 - cfg.Player.SpawnOffsetY,
		W:               w,
		H:               w * cfg.Player.HeightRatio,
		Health:          cfg.Player.Health,
		MaxHealth:       cfg.Player.Health,
		Damage:          cfg.Player.Damage,
		MoveSpeed:       cfg.Player.MoveSpeed,
		JumpSpeed:       cfg.Player.JumpSpeed,
		FireRate:        cfg.Player.FireRate,
		ProjectileSize:  cfg.Player.ProjectileSize,
		ProjectileSpeed: cfg.Player.ProjectileSpeed,
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Has reports whether the upgrade has been taken at least once.
func (p *Player) Has(k UpgradeKind) bool {
	return p.Upgrades[k] > 0
}

// Muzzle returns where bullets leave the player: one width above the head.
func (p *Player) Muzzle() (x, y float64) {
	return p.X, p.Y - (p.H+p.W)/2
}

// hurt removes health, never going below zero.
func (p *Player) hurt(n int) {
	p.Health = max(p.Health-n, 0)
}
