package config

import "math"

// DifficultyManager maps score (or elapsed time) to the interpolated
// gameplay multipliers. Scroll speed has its own time-based ramp and is not
// derived from here.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level in [0, 1] for a score and the
// elapsed running time in seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeedMultiplier ramps linearly from 1.0 to the configured maximum.
func (d *DifficultyManager) EnemySpeedMultiplier(score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return 1.0 + level*(d.cfg.Scaling.EnemySpeedMultiplierMax-1.0)
}

// PowerupSpawnChance scales rare spawn bands: 1.0 at level 0, down to
// PowerupReductionMax at level 1.
func (d *DifficultyManager) PowerupSpawnChance(score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return 1.0 - level*(1.0-d.cfg.Scaling.PowerupReductionMax)
}

// SpawnIntervalScale shrinks the spawn interval: 1.0 at level 0, down to
// SpawnIntervalScaleMin at level 1.
func (d *DifficultyManager) SpawnIntervalScale(score int, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return 1.0 - level*(1.0-d.cfg.Scaling.SpawnIntervalScaleMin)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
