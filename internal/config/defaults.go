package config

import (
	_ "embed"
)

//go:embed defaults/sinkhole.yaml
var defaultSinkholeYAML []byte

//go:embed defaults/upgrades.yaml
var defaultUpgradesYAML []byte

// DefaultSinkholeConfig returns the built-in configuration.
func DefaultSinkholeConfig() SinkholeConfig {
	return SinkholeConfig{
		World: WorldConfig{
			Width:        1600,
			Height:       900,
			WallFraction: 0.2,
			ScoreOffset:  347,
		},
		Physics: PhysicsConfig{
			Gravity:          600,
			TerminalVelocity: 6000,
			GracePeriod:      1.0,
		},
		Player: PlayerConfig{
			WidthFraction:   0.02,
			HeightRatio:     3,
			SpawnOffsetY:    100,
			MoveSpeed:       150,
			JumpSpeed:       500,
			Health:          3,
			Damage:          50,
			ProjectileSize:  30,
			ProjectileSpeed: 500,
			FireRate:        2,
		},
		Platforms: PlatformConfig{
			Layers:            6,
			LayerUnit:         100,
			ThicknessFraction: 0.01,
			MinPlatform:       250,
			MinGap:            175,
			Spacing:           2,
			FirstDepth:        5,
			InitialThreshold:  9,
			LookAhead:         3,
		},
		Upgrades: UpgradeConfig{
			FirstThreshold:      2000,
			NextThreshold:       5000,
			FallingBand:         1000,
			Offered:             3,
			DamageStep:          10,
			MoveSpeedStep:       50,
			FireRateStep:        2,
			ProjectileSizeStep:  30,
			ProjectileSpeedStep: 200,
		},
		Walking: WalkingConfig{
			WidthFraction:   0.03,
			HeightRatio:     1.5,
			DetectRange:     200,
			PatrolMargin:    10,
			BaseHealth:      20,
			HealthStep:      20,
			BaseSpeed:       60,
			SpeedStep:       40,
			ChaseMultiplier: 3,
			BaseChance:      25,
			ChanceStep:      5,
			MaxChance:       75,
			MaxBatch:        3,
			DropChance:      5,
		},
		Flying: FlyingConfig{
			DiameterFraction: 0.03,
			UnlockAt:         2,
			Interval:         4,
			BaseHealth:       10,
			HealthStep:       5,
			BaseSpeed:        240,
			SpeedStep:        120,
			MaxActive:        5,
		},
		Lazer: LazerConfig{
			UnlockAt:      4,
			MinInterval:   5,
			MaxInterval:   8,
			BaseFireDelay: 3,
			FireDelayStep: 0.25,
			MinFireDelay:  1,
			BaseHeight:    50,
			HeightStep:    10,
			MaxHeight:     100,
		},
		Bullets: BulletConfig{
			MaxRange: 0,
		},
		Pickups: PickupConfig{
			Size: 50,
			Heal: 1,
		},
		Pools: PoolConfig{
			Bullets: 20,
			Pickups: 5,
			Lazers:  10,
			Walking: 50,
			Flying:  10,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Bias:    0,
		},
	}
}
