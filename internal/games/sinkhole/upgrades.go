package sinkhole

import (
	"math/rand"

	"github.com/vovakirdan/sinkhole/internal/config"
)

// UpgradeKind identifies an upgrade. The numeric order matches the order of
// the upgrade text table and must not change.
type UpgradeKind int

const (
	UpgradeHealth          UpgradeKind = iota // +1 max health and heal 1
	UpgradeDamage                             // bullets hit harder
	UpgradeMoveSpeed                          // run faster
	UpgradeMidAirControl                      // steer while airborne
	UpgradeDoubleJump                         // one extra jump in the air
	UpgradeClimbUp                            // pass upward through platforms
	UpgradeClimbDown                          // drop through the platform underfoot
	UpgradePiercing                           // bullets ignore platforms
	UpgradeFireRate                           // shoot more often
	UpgradeProjectileSize                     // bigger bullets
	UpgradeProjectileSpeed                    // faster bullets

	upgradeKinds = iota
)

var upgradeNames = [upgradeKinds]string{
	"health", "damage", "move-speed", "mid-air-control", "double-jump",
	"climb-up", "climb-down", "piercing", "fire-rate", "projectile-size",
	"projectile-speed",
}

func (k UpgradeKind) String() string {
	if k < 0 || int(k) >= upgradeKinds {
		return "unknown"
	}
	return upgradeNames[k]
}

// Repeatable reports whether the upgrade can be offered after it was taken.
func (k UpgradeKind) Repeatable() bool {
	return k <= UpgradeMoveSpeed
}

// AllUpgrades returns every upgrade kind in index order.
func AllUpgrades() []UpgradeKind {
	kinds := make([]UpgradeKind, upgradeKinds)
	for i := range kinds {
		kinds[i] = UpgradeKind(i)
	}
	return kinds
}

// upgradeEffect changes the player's stats when an upgrade is taken. Unlock
// upgrades have no stat change; the movement and combat code checks the
// player's levels instead.
type upgradeEffect func(p *Player, cfg config.UpgradeConfig)

var upgradeEffects = [upgradeKinds]upgradeEffect{
	UpgradeHealth: func(p *Player, _ config.UpgradeConfig) {
		p.MaxHealth++
		p.Health++
	},
	UpgradeDamage: func(p *Player, cfg config.UpgradeConfig) {
		p.Damage += cfg.DamageStep
	},
	UpgradeMoveSpeed: func(p *Player, cfg config.UpgradeConfig) {
		p.MoveSpeed += cfg.MoveSpeedStep
	},
	UpgradeMidAirControl: unlockOnly,
	UpgradeDoubleJump:    unlockOnly,
	UpgradeClimbUp:       unlockOnly,
	UpgradeClimbDown:     unlockOnly,
	UpgradePiercing:      unlockOnly,
	UpgradeFireRate: func(p *Player, cfg config.UpgradeConfig) {
		p.FireRate += cfg.FireRateStep
	},
	UpgradeProjectileSize: func(p *Player, cfg config.UpgradeConfig) {
		p.ProjectileSize += cfg.ProjectileSizeStep
	},
	UpgradeProjectileSpeed: func(p *Player, cfg config.UpgradeConfig) {
		p.ProjectileSpeed += cfg.ProjectileSpeedStep
	},
}

func unlockOnly(*Player, config.UpgradeConfig) {}

// applyUpgrade records the upgrade on the player and applies its effect.
func applyUpgrade(p *Player, k UpgradeKind, cfg config.UpgradeConfig) {
	if k < 0 || int(k) >= upgradeKinds {
		return
	}
	p.Upgrades[k]++
	p.TotalUpgrades++
	upgradeEffects[k](p, cfg)
}

// availableUpgrades lists the kinds the player may still be offered.
func availableUpgrades(p *Player) []UpgradeKind {
	var kinds []UpgradeKind
	for _, k := range AllUpgrades() {
		if k.Repeatable() || p.Upgrades[k] == 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// offerUpgrades draws n distinct available upgrades.
func offerUpgrades(rng *rand.Rand, p *Player, n int) []UpgradeKind {
	pool := availableUpgrades(p)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}
