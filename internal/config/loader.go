package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the full game configuration.
// Search order: customPath -> ~/.duckdash/configs/duckdash.yaml -> ./configs/duckdash.yaml -> embedded default
func Load(customPath string) (DuckConfig, error) {
	return LoadProfile(ProfileDuckDash, customPath)
}

// LoadClassic loads the classic profile configuration.
func LoadClassic(customPath string) (DuckConfig, error) {
	return LoadProfile(ProfileClassic, customPath)
}

// LoadProfile loads a named profile. Files are decoded over the profile's
// hard-coded defaults, so a partial file only overrides what it names.
// The result is validated before it is returned.
func LoadProfile(profile, customPath string) (DuckConfig, error) {
	base, ok := DefaultFor(profile)
	if !ok {
		return DuckConfig{}, fmt.Errorf("unknown config profile %q", profile)
	}

	cfg, err := load(profile, customPath, base)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", profile, err)
	}
	return cfg, nil
}

func load(profile, customPath string, base DuckConfig) (DuckConfig, error) {
	filename := profile + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := copyConfig(base)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := decodeFile(userCfgPath, base); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(filepath.Join("configs", filename), base); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := copyConfig(base)
	if err := yaml.Unmarshal(GetDefaultYAML(profile), &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile decodes path over base. Missing or malformed files are skipped.
func decodeFile(path string, base DuckConfig) (DuckConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := copyConfig(base)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// copyConfig detaches the entity map so decoding into the copy leaves base intact.
func copyConfig(c DuckConfig) DuckConfig {
	out := c
	out.Entities = make(map[string]EntityConfig, len(c.Entities))
	for k, v := range c.Entities {
		out.Entities[k] = v
	}
	return out
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duckdash", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyPreset(cfg *DuckConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the grace period around the baseline
	switch preset {
	case DifficultyEasy:
		cfg.Health.Invulnerability *= 1.5
	case DifficultyHard:
		cfg.Health.Invulnerability *= 0.75
	}
}

// Validate checks every relationship the simulation relies on and reports
// all violations at once.
func (c DuckConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Playfield
	check(p.Width > 0 && p.Height > 0, "playfield: size must be positive, got %vx%v", p.Width, p.Height)
	check(p.GroundHeight >= 0 && p.GroundHeight < p.Height, "playfield: ground_height %v out of range", p.GroundHeight)
	check(p.OffscreenMargin >= 0, "playfield: offscreen_margin must not be negative")

	check(c.Physics.Gravity > 0, "physics: gravity must be positive")
	check(c.Physics.JumpImpulse > 0, "physics: jump_impulse must be positive")
	check(c.Physics.DoubleJumpImpulse >= 0, "physics: double_jump_impulse must not be negative")
	check(c.Physics.JumpCutFactor >= 0 && c.Physics.JumpCutFactor <= 1, "physics: jump_cut_factor must be in [0, 1]")

	check(c.Speed.Initial > 0, "speed: initial must be positive")
	check(c.Speed.Max >= c.Speed.Initial, "speed: max %v below initial %v", c.Speed.Max, c.Speed.Initial)
	check(c.Speed.Increment >= 0, "speed: increment must not be negative")
	check(c.Speed.Interval > 0, "speed: interval must be positive")

	pl := c.Player
	check(pl.MinX <= pl.RestX && pl.RestX <= pl.MaxX, "player: rest_x %v outside [%v, %v]", pl.RestX, pl.MinX, pl.MaxX)
	check(pl.Width > 0 && pl.Height > 0, "player: size must be positive")

	if c.Dash.Enabled {
		check(c.Dash.Duration > 0, "dash: duration must be positive")
		check(c.Dash.Cooldown >= 0, "dash: cooldown must not be negative")
	}

	check(c.Health.MaxLives > 0, "health: max_lives must be positive")
	check(c.Health.Invulnerability >= 0, "health: invulnerability must not be negative")
	check(c.Scoring.TickInterval > 0, "scoring: tick_interval must be positive")

	s := c.Spawning
	check(s.MinInterval > 0 && s.MaxInterval >= s.MinInterval, "spawning: interval range [%v, %v] invalid", s.MinInterval, s.MaxInterval)
	check(s.Roll > 0, "spawning: roll must be positive")
	check(s.PlatformBreadChance >= 0 && s.PlatformBreadChance <= 1, "spawning: platform_bread_chance must be in [0, 1]")
	check(len(s.Table) > 0, "spawning: table is empty")
	prev := -1
	for i, band := range s.Table {
		check(band.Upto > prev, "spawning: table row %d (%s) is not ascending", i, band.Kind)
		prev = band.Upto
		if _, ok := c.Entities[band.Kind]; !ok {
			errs = append(errs, fmt.Errorf("spawning: table row %d: no entity config for %q", i, band.Kind))
		}
		if band.Kind == "magnet" {
			check(c.Powerups.MagnetDuration > 0 && c.Powerups.MagnetRange > 0, "powerups: magnet spawns but has no duration or range")
		}
	}

	for kind, e := range c.Entities {
		check(e.Width > 0 && e.Height > 0, "entities: %s size must be positive", kind)
		check(e.LiftMax >= e.LiftMin, "entities: %s lift range invalid", kind)
	}

	check(c.Environment.TileWidth > 0, "environment: tile_width must be positive")
	check(c.Environment.CloudMaxInterval >= c.Environment.CloudMinInterval && c.Environment.CloudMinInterval > 0,
		"environment: cloud interval range invalid")

	d := c.Difficulty
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "difficulty: initial_level must be in [0, 1]")
	switch d.Progression.Type {
	case "score", "time":
		check(d.Progression.MaxAt > 0, "difficulty: max_at must be positive for %s progression", d.Progression.Type)
	case "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", d.Progression.Type))
	}
	check(d.Scaling.EnemySpeedMultiplierMax >= 1, "difficulty: enemy_speed_multiplier_max must be >= 1")
	check(d.Scaling.PowerupReductionMax >= 0 && d.Scaling.PowerupReductionMax <= 1, "difficulty: powerup_reduction_max must be in [0, 1]")
	check(d.Scaling.SpawnIntervalScaleMin > 0 && d.Scaling.SpawnIntervalScaleMin <= 1, "difficulty: spawn_interval_scale_min must be in (0, 1]")

	check(len(c.Biomes) > 0, "biomes: at least one biome is required")
	for i, b := range c.Biomes {
		if i == 0 {
			check(b.Score == 0, "biomes: first biome must start at score 0")
			continue
		}
		check(b.Score > c.Biomes[i-1].Score, "biomes: %s breakpoint is not ascending", b.Name)
	}

	check(c.Countdown.Beats >= 0 && c.Countdown.BeatSec >= 0 && c.Countdown.GoSec >= 0, "countdown: values must not be negative")

	return errors.Join(errs...)
}
