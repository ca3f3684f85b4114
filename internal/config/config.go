// Package config provides YAML-based game configuration loading and
// difficulty management for Sinkhole.
package config

import (
	"errors"
	"fmt"
)

// SinkholeConfig contains all tunables of the simulation.
type SinkholeConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Upgrades   UpgradeConfig    `yaml:"upgrades"`
	Walking    WalkingConfig    `yaml:"walking"`
	Flying     FlyingConfig     `yaml:"flying"`
	Lazer      LazerConfig      `yaml:"lazer"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Pools      PoolConfig       `yaml:"pools"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical window the simulation runs in.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	WallFraction float64 `yaml:"wall_fraction"` // wall width as a fraction of Width
	ScoreOffset  float64 `yaml:"score_offset"`  // depth reported as maxY - ScoreOffset
}

// WallWidth returns the width of each side wall.
func (w WorldConfig) WallWidth() float64 {
	return w.Width * w.WallFraction
}

// PlayableSpace returns the horizontal span between the walls.
func (w WorldConfig) PlayableSpace() float64 {
	return w.Width - 2*w.WallWidth()
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // units/s²
	TerminalVelocity float64 `yaml:"terminal_velocity"` // max fall speed, units/s
	GracePeriod      float64 `yaml:"grace_period"`      // seconds without gravity at run start
}

// PlayerConfig defines the starting player stats.
type PlayerConfig struct {
	WidthFraction   float64 `yaml:"width_fraction"` // of world width
	HeightRatio     float64 `yaml:"height_ratio"`   // height = width * ratio
	SpawnOffsetY    float64 `yaml:"spawn_offset_y"` // above the vertical center
	MoveSpeed       float64 `yaml:"move_speed"`
	JumpSpeed       float64 `yaml:"jump_speed"`
	Health          int     `yaml:"health"`
	Damage          int     `yaml:"damage"`
	ProjectileSize  float64 `yaml:"projectile_size"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	FireRate        float64 `yaml:"fire_rate"` // shots per second
}

// PlatformConfig defines layer generation and scrolling.
type PlatformConfig struct {
	Layers            int     `yaml:"layers"`     // size of the rolling window
	LayerUnit         float64 `yaml:"layer_unit"` // world units per depth index
	ThicknessFraction float64 `yaml:"thickness_fraction"`
	MinPlatform       int     `yaml:"min_platform"`
	MinGap            int     `yaml:"min_gap"`
	Spacing           int     `yaml:"spacing"`     // depth indices between layers
	FirstDepth        int     `yaml:"first_depth"` // depth index of the first layer
	InitialThreshold  int     `yaml:"initial_threshold"`
	LookAhead         int     `yaml:"look_ahead"` // layers kept below the trigger bucket
}

// UpgradeConfig defines upgrade thresholds and stat increments.
type UpgradeConfig struct {
	FirstThreshold      float64 `yaml:"first_threshold"` // depth of the first upgrade
	NextThreshold       float64 `yaml:"next_threshold"`  // distance between upgrades
	FallingBand         float64 `yaml:"falling_band"`    // empty layers after each upgrade
	Offered             int     `yaml:"offered"`
	DamageStep          int     `yaml:"damage_step"`
	MoveSpeedStep       float64 `yaml:"move_speed_step"`
	FireRateStep        float64 `yaml:"fire_rate_step"`
	ProjectileSizeStep  float64 `yaml:"projectile_size_step"`
	ProjectileSpeedStep float64 `yaml:"projectile_speed_step"`
}

// WalkingConfig defines walking enemies and their spawn ramp.
type WalkingConfig struct {
	WidthFraction   float64 `yaml:"width_fraction"`
	HeightRatio     float64 `yaml:"height_ratio"`
	DetectRange     float64 `yaml:"detect_range"`
	PatrolMargin    float64 `yaml:"patrol_margin"`
	BaseHealth      int     `yaml:"base_health"`
	HealthStep      int     `yaml:"health_step"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedStep       float64 `yaml:"speed_step"`
	ChaseMultiplier float64 `yaml:"chase_multiplier"`
	BaseChance      int     `yaml:"base_chance"` // percent
	ChanceStep      int     `yaml:"chance_step"`
	MaxChance       int     `yaml:"max_chance"`
	MaxBatch        int     `yaml:"max_batch"`
	DropChance      int     `yaml:"drop_chance"` // percent chance of a health pickup
}

// FlyingConfig defines flying enemies and their spawn ramp.
type FlyingConfig struct {
	DiameterFraction float64 `yaml:"diameter_fraction"`
	UnlockAt         int     `yaml:"unlock_at"` // ramp level
	Interval         float64 `yaml:"interval"`  // seconds between spawns
	BaseHealth       int     `yaml:"base_health"`
	HealthStep       int     `yaml:"health_step"`
	BaseSpeed        float64 `yaml:"base_speed"`
	SpeedStep        float64 `yaml:"speed_step"`
	MaxActive        int     `yaml:"max_active"`
}

// LazerConfig defines lazer hazards and their ramp.
type LazerConfig struct {
	UnlockAt      int     `yaml:"unlock_at"`
	MinInterval   int     `yaml:"min_interval"` // seconds
	MaxInterval   int     `yaml:"max_interval"`
	BaseFireDelay float64 `yaml:"base_fire_delay"`
	FireDelayStep float64 `yaml:"fire_delay_step"`
	MinFireDelay  float64 `yaml:"min_fire_delay"`
	BaseHeight    float64 `yaml:"base_height"`
	HeightStep    float64 `yaml:"height_step"`
	MaxHeight     float64 `yaml:"max_height"`
}

// BulletConfig defines projectile limits.
type BulletConfig struct {
	MaxRange float64 `yaml:"max_range"` // 0 = unlimited
}

// PickupConfig defines health pickups.
type PickupConfig struct {
	Size float64 `yaml:"size"`
	Heal int     `yaml:"heal"`
}

// PoolConfig defines entity pool capacities.
type PoolConfig struct {
	Bullets int `yaml:"bullets"`
	Pickups int `yaml:"pickups"`
	Lazers  int `yaml:"lazers"`
	Walking int `yaml:"walking"`
	Flying  int `yaml:"flying"`
}

// DifficultyConfig defines how upgrades feed the difficulty ramp.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"` // false freezes the ramp at Bias
	Bias    int  `yaml:"bias"`    // levels added to the upgrade count, may be negative
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// BiasForPreset returns the ramp bias for a difficulty preset. Normal
// matches the default config; easy trails it by one level and hard runs
// two levels ahead.
func BiasForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return -1
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// Validate reports configurations the simulation cannot run with.
func (c SinkholeConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.WallFraction < 0 || c.World.WallFraction >= 0.5 {
		errs = append(errs, fmt.Errorf("wall_fraction must be in [0, 0.5), got %v", c.World.WallFraction))
	}
	if c.Platforms.Layers < 4 {
		errs = append(errs, fmt.Errorf("platforms.layers must be at least 4, got %d", c.Platforms.Layers))
	}
	if c.Platforms.LayerUnit <= 0 || c.Platforms.Spacing <= 0 {
		errs = append(errs, errors.New("platforms.layer_unit and platforms.spacing must be positive"))
	}
	if c.Platforms.MinPlatform <= 0 || c.Platforms.MinGap <= 0 {
		errs = append(errs, errors.New("platforms.min_platform and platforms.min_gap must be positive"))
	}
	if float64(c.Platforms.MinPlatform+c.Platforms.MinGap) > c.World.PlayableSpace() {
		errs = append(errs, fmt.Errorf("min_platform + min_gap (%d) exceeds playable space %v",
			c.Platforms.MinPlatform+c.Platforms.MinGap, c.World.PlayableSpace()))
	}
	if c.Pools.Bullets <= 0 || c.Pools.Pickups <= 0 || c.Pools.Lazers <= 0 ||
		c.Pools.Walking <= 0 || c.Pools.Flying <= 0 {
		errs = append(errs, errors.New("pool capacities must be positive"))
	}
	if c.Upgrades.Offered <= 0 {
		errs = append(errs, errors.New("upgrades.offered must be positive"))
	}
	if c.Lazer.MaxInterval < c.Lazer.MinInterval {
		errs = append(errs, errors.New("lazer.max_interval must not be below lazer.min_interval"))
	}
	if c.Player.FireRate <= 0 {
		errs = append(errs, errors.New("player.fire_rate must be positive"))
	}

	return errors.Join(errs...)
}
