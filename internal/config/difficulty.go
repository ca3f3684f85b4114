package config

// DifficultyManager turns the player's upgrade count into the ramp level
// that drives enemy and hazard spawning.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether upgrades raise the ramp.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the ramp level for the given number of upgrades taken.
// The bias shifts the ramp and the result never drops below zero.
func (d *DifficultyManager) Level(totalUpgrades int) int {
	level := d.cfg.Bias
	if d.cfg.Enabled {
		level += max(totalUpgrades, 0)
	}
	return max(level, 0)
}
