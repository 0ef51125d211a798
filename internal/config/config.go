// Package config provides YAML-based game configuration loading, validation
// and difficulty management for duck dash.
package config

import (
	"github.com/vovakirdan/duckdash/internal/core"
)

// DuckConfig contains every tunable of one duck dash profile.
// Units are world pixels and seconds on a playfield whose y axis grows downward.
type DuckConfig struct {
	Name        string                  `yaml:"name"`
	Playfield   PlayfieldConfig         `yaml:"playfield"`
	Physics     PhysicsConfig           `yaml:"physics"`
	Speed       SpeedConfig             `yaml:"speed"`
	Player      PlayerConfig            `yaml:"player"`
	Dash        DashConfig              `yaml:"dash"`
	Powerups    PowerupConfig           `yaml:"powerups"`
	Health      HealthConfig            `yaml:"health"`
	Scoring     ScoringConfig           `yaml:"scoring"`
	Spawning    SpawningConfig          `yaml:"spawning"`
	Entities    map[string]EntityConfig `yaml:"entities"`
	Environment EnvironmentConfig       `yaml:"environment"`
	Difficulty  DifficultyConfig        `yaml:"difficulty"`
	Biomes      []BiomeConfig           `yaml:"biomes"`
	Countdown   CountdownConfig         `yaml:"countdown"`
	Commentary  CommentaryConfig        `yaml:"commentary"`
	Input       InputConfig             `yaml:"input"`
}

// PlayfieldConfig defines the fixed world rectangle.
type PlayfieldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundHeight    float64 `yaml:"ground_height"`
	OffscreenMargin float64 `yaml:"offscreen_margin"` // Distance past the left edge before eviction
}

// FloorY returns the y coordinate of the top of the floor.
func (p PlayfieldConfig) FloorY() float64 {
	return p.Height - p.GroundHeight
}

// PhysicsConfig defines gravity and jump parameters.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse"`
	DoubleJumpImpulse float64 `yaml:"double_jump_impulse"`
	JumpCutFactor     float64 `yaml:"jump_cut_factor"` // Upward velocity multiplier on early release
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
}

// SpeedConfig defines the time-based scroll speed ramp.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Max       float64 `yaml:"max"`
	Increment float64 `yaml:"increment"`
	Interval  float64 `yaml:"interval"` // Seconds between increments
}

// PlayerConfig defines the player body and horizontal control.
type PlayerConfig struct {
	RestX      float64 `yaml:"rest_x"`
	MinX       float64 `yaml:"min_x"`
	MaxX       float64 `yaml:"max_x"`
	MoveSpeed  float64 `yaml:"move_speed"`
	DriftSpeed float64 `yaml:"drift_speed"` // Speed of the passive return to RestX
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// DashConfig defines the forward dash.
type DashConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Distance float64 `yaml:"distance"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"` // Counted from the end of the previous dash
}

// PowerupConfig defines magnet parameters. The shield has no tunables.
type PowerupConfig struct {
	MagnetDuration    float64 `yaml:"magnet_duration"`
	MagnetRange       float64 `yaml:"magnet_range"`
	MagnetPull        float64 `yaml:"magnet_pull"`         // Pull speed at the edge of the range
	MagnetMinDistance float64 `yaml:"magnet_min_distance"` // Distance floor for the inverse pull
}

// HealthConfig defines lives and post-damage invulnerability.
type HealthConfig struct {
	MaxLives        int     `yaml:"max_lives"`
	Invulnerability float64 `yaml:"invulnerability"`
}

// ScoringConfig defines every point award.
type ScoringConfig struct {
	TickInterval   float64 `yaml:"tick_interval"`
	TickPoints     int     `yaml:"tick_points"`
	Bread          int     `yaml:"bread"`
	Shield         int     `yaml:"shield"`
	Magnet         int     `yaml:"magnet"`
	Heart          int     `yaml:"heart"`
	HeartFullBonus int     `yaml:"heart_full_bonus"`
	EnemySmash     int     `yaml:"enemy_smash"`
}

// SpawningConfig defines the spawn timer and the cumulative category table.
type SpawningConfig struct {
	MinInterval         float64     `yaml:"min_interval"`
	MaxInterval         float64     `yaml:"max_interval"`
	Roll                int         `yaml:"roll"` // Draw range [0, Roll)
	PlatformBreadChance float64     `yaml:"platform_bread_chance"`
	PlatformBreadLift   float64     `yaml:"platform_bread_lift"`
	GroundBreadOffset   float64     `yaml:"ground_bread_offset"`
	AirBreadLift        float64     `yaml:"air_bread_lift"`
	GroundBreadLift     float64     `yaml:"ground_bread_lift"`
	Table               []SpawnBand `yaml:"table"`
}

// SpawnBand is one row of the cumulative spawn table. A draw d selects the
// first band with d <= Upto. Rare bands shrink with difficulty.
type SpawnBand struct {
	Kind string `yaml:"kind"`
	Upto int    `yaml:"upto"`
	Rare bool   `yaml:"rare,omitempty"`
}

// EntityConfig defines the body and behavior of one entity kind.
// Lift is measured upward from the bottom edge of the playfield to the
// entity center; a random lift is drawn from [LiftMin, LiftMax].
type EntityConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Circle          bool    `yaml:"circle,omitempty"`
	LiftMin         float64 `yaml:"lift_min"`
	LiftMax         float64 `yaml:"lift_max"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	Gravity         bool    `yaml:"gravity,omitempty"`
	HopInterval     float64 `yaml:"hop_interval,omitempty"`
	HopForce        float64 `yaml:"hop_force,omitempty"`
	WaveFreq        float64 `yaml:"wave_freq,omitempty"`
	WaveAmplitude   float64 `yaml:"wave_amplitude,omitempty"`
}

// EnvironmentConfig defines ground tiles, clouds and stars.
type EnvironmentConfig struct {
	TileWidth        float64 `yaml:"tile_width"`
	CloudMinInterval float64 `yaml:"cloud_min_interval"`
	CloudMaxInterval float64 `yaml:"cloud_max_interval"`
	CloudSpeedFactor float64 `yaml:"cloud_speed_factor"`
	CloudMargin      float64 `yaml:"cloud_margin"`
	CloudMinY        float64 `yaml:"cloud_min_y"`
	CloudMaxY        float64 `yaml:"cloud_max_y"`
	StarCount        int     `yaml:"star_count"`
	BackgroundLerp   float64 `yaml:"background_lerp"` // Fraction of the remaining distance covered per second
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score (or seconds) at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	EnemySpeedMultiplierMax float64 `yaml:"enemy_speed_multiplier_max"`
	PowerupReductionMax     float64 `yaml:"powerup_reduction_max"`    // Rare band width factor at max difficulty
	SpawnIntervalScaleMin   float64 `yaml:"spawn_interval_scale_min"` // Spawn interval factor at max difficulty
}

// BiomeConfig is one score-keyed visual zone.
type BiomeConfig struct {
	Name   string   `yaml:"name"`
	Score  int      `yaml:"score"`
	Sky    core.RGB `yaml:"sky"`
	Ground core.RGB `yaml:"ground"`
}

// CountdownConfig defines the pre-run countdown.
type CountdownConfig struct {
	Beats   int     `yaml:"beats"`
	BeatSec float64 `yaml:"beat_sec"`
	GoSec   float64 `yaml:"go_sec"`
}

// CommentaryConfig defines the game-over commentary lookup.
type CommentaryConfig struct {
	Enabled    bool              `yaml:"enabled"`
	Endpoint   string            `yaml:"endpoint"`    // Base URL, empty for the SDK default
	APIVersion string            `yaml:"api_version"` // e.g. v1beta
	Model      string            `yaml:"model"`
	APIKeyEnv  string            `yaml:"api_key_env"`
	Timeout    float64           `yaml:"timeout"` // Seconds
	Fallbacks  []FallbackBracket `yaml:"fallbacks"`
}

// FallbackBracket maps scores below Below to a canned line.
// A bracket with Below == 0 matches every score.
type FallbackBracket struct {
	Below int    `yaml:"below"`
	Text  string `yaml:"text"`
}

// InputConfig defines hold windows used to emulate key release on terminals
// that only report key presses.
type InputConfig struct {
	MoveHold float64 `yaml:"move_hold"`
	JumpHold float64 `yaml:"jump_hold"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
// Normal starts at level 0 so its curve is clamp(score/max_at).
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy, DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
