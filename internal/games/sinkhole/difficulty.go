package sinkhole

import "github.com/vovakirdan/sinkhole/internal/config"

// Ramp maps a difficulty level to spawn parameters. The level comes from
// config.DifficultyManager and is normally the number of upgrades taken.
type Ramp struct {
	walking config.WalkingConfig
	flying  config.FlyingConfig
	lazer   config.LazerConfig
}

// NewRamp creates a ramp from the enemy and hazard settings of cfg.
func NewRamp(cfg config.SinkholeConfig) Ramp {
	return Ramp{walking: cfg.Walking, flying: cfg.Flying, lazer: cfg.Lazer}
}

// WalkingChance returns the percent chance that a new layer gets walkers.
func (r Ramp) WalkingChance(level int) int {
	return min(r.walking.BaseChance+r.walking.ChanceStep*level, r.walking.MaxChance)
}

// WalkingBatchMax returns the most walkers one layer can receive.
func (r Ramp) WalkingBatchMax(level int) int {
	return max(min(1+level/2, r.walking.MaxBatch), 1)
}

// WalkingHealth returns the health of a new walker.
func (r Ramp) WalkingHealth(level int) int {
	return r.walking.BaseHealth + r.walking.HealthStep*(level/2)
}

// WalkingSpeed returns the patrol speed of a new walker.
func (r Ramp) WalkingSpeed(level int) float64 {
	return r.walking.BaseSpeed + r.walking.SpeedStep*float64(level/2)
}

// FlyingUnlocked reports whether flyers spawn at this level.
func (r Ramp) FlyingUnlocked(level int) bool {
	return level >= r.flying.UnlockAt
}

func (r Ramp) flyingTier(level int) int {
	return max(level-r.flying.UnlockAt, 0) / 2
}

// FlyingHealth returns the health of a new flyer.
func (r Ramp) FlyingHealth(level int) int {
	return r.flying.BaseHealth + r.flying.HealthStep*r.flyingTier(level)
}

// FlyingSpeed returns the speed of a new flyer.
func (r Ramp) FlyingSpeed(level int) float64 {
	return r.flying.BaseSpeed + r.flying.SpeedStep*float64(r.flyingTier(level))
}

// LazerUnlocked reports whether lazers spawn at this level.
func (r Ramp) LazerUnlocked(level int) bool {
	return level >= r.lazer.UnlockAt
}

func (r Ramp) lazerTier(level int) int {
	return max(level-r.lazer.UnlockAt, 0) / 2
}

// LazerFireDelay returns how long a new lazer warns before firing.
func (r Ramp) LazerFireDelay(level int) float64 {
	return max(r.lazer.BaseFireDelay-r.lazer.FireDelayStep*float64(r.lazerTier(level)), r.lazer.MinFireDelay)
}

// LazerHeight returns the height of a new lazer band.
func (r Ramp) LazerHeight(level int) float64 {
	return min(r.lazer.BaseHeight+r.lazer.HeightStep*float64(r.lazerTier(level)), r.lazer.MaxHeight)
}
