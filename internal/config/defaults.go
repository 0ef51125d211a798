package config

import (
	_ "embed"

	"github.com/vovakirdan/duckdash/internal/core"
)

// Profile identifiers, also used as config file names.
const (
	ProfileDuckDash = "duckdash"
	ProfileClassic  = "duckdash_classic"
)

//go:embed defaults/duckdash.yaml
var defaultDuckDashYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultConfig returns the default configuration of the full game.
func DefaultConfig() DuckConfig {
	return DuckConfig{
		Name: ProfileDuckDash,
		Playfield: PlayfieldConfig{
			Width:           640,
			Height:          480,
			GroundHeight:    48,
			OffscreenMargin: 100,
		},
		Physics: PhysicsConfig{
			Gravity:           2400,
			JumpImpulse:       900,
			DoubleJumpImpulse: 700,
			JumpCutFactor:     0.5,
			MaxFallSpeed:      1600,
		},
		Speed: SpeedConfig{
			Initial:   400,
			Max:       800,
			Increment: 15,
			Interval:  5,
		},
		Player: PlayerConfig{
			RestX:      80,
			MinX:       40,
			MaxX:       400,
			MoveSpeed:  300,
			DriftSpeed: 150,
			Width:      48,
			Height:     48,
		},
		Dash: DashConfig{
			Enabled:  true,
			Distance: 50,
			Duration: 0.3,
			Cooldown: 2.0,
		},
		Powerups: PowerupConfig{
			MagnetDuration:    8,
			MagnetRange:       400,
			MagnetPull:        200,
			MagnetMinDistance: 8,
		},
		Health: HealthConfig{
			MaxLives:        3,
			Invulnerability: 2,
		},
		Scoring: ScoringConfig{
			TickInterval:   0.5,
			TickPoints:     5,
			Bread:          100,
			Shield:         50,
			Magnet:         50,
			Heart:          50,
			HeartFullBonus: 200,
			EnemySmash:     50,
		},
		Spawning: SpawningConfig{
			MinInterval:         0.8,
			MaxInterval:         1.8,
			Roll:                100,
			PlatformBreadChance: 0.7,
			PlatformBreadLift:   40,
			GroundBreadOffset:   150,
			AirBreadLift:        220,
			GroundBreadLift:     130,
			Table: []SpawnBand{
				{Kind: "obstacle", Upto: 18},
				{Kind: "slime", Upto: 30},
				{Kind: "frog", Upto: 42},
				{Kind: "drone", Upto: 52},
				{Kind: "bat", Upto: 65},
				{Kind: "platform", Upto: 75},
				{Kind: "shield", Upto: 80, Rare: true},
				{Kind: "magnet", Upto: 85, Rare: true},
				{Kind: "heart", Upto: 90, Rare: true},
				{Kind: "bread", Upto: 100},
			},
		},
		Entities: map[string]EntityConfig{
			"obstacle": {Width: 32, Height: 40, LiftMin: 68, LiftMax: 68, SpeedMultiplier: 1},
			"slime":    {Width: 40, Height: 32, LiftMin: 60, LiftMax: 60, SpeedMultiplier: 1, Gravity: true, HopInterval: 1.5, HopForce: 600},
			"frog":     {Width: 40, Height: 36, LiftMin: 70, LiftMax: 70, SpeedMultiplier: 1.2, Gravity: true, HopInterval: 1.0, HopForce: 750},
			"drone":    {Width: 48, Height: 32, LiftMin: 100, LiftMax: 180, SpeedMultiplier: 1.2, WaveFreq: 40, WaveAmplitude: 3},
			"bat":      {Width: 48, Height: 32, LiftMin: 100, LiftMax: 220, SpeedMultiplier: 1.1, WaveFreq: 5, WaveAmplitude: 30},
			"platform": {Width: 96, Height: 16, LiftMin: 100, LiftMax: 180, SpeedMultiplier: 1},
			"bread":    {Width: 32, Height: 24, SpeedMultiplier: 1},
			"shield":   {Width: 24, Height: 32, LiftMin: 120, LiftMax: 120, SpeedMultiplier: 1},
			"magnet":   {Width: 24, Height: 32, LiftMin: 120, LiftMax: 120, SpeedMultiplier: 1},
			"heart":    {Width: 32, Height: 28, LiftMin: 100, LiftMax: 180, SpeedMultiplier: 1},
		},
		Environment: EnvironmentConfig{
			TileWidth:        64,
			CloudMinInterval: 1,
			CloudMaxInterval: 3,
			CloudSpeedFactor: 0.2,
			CloudMargin:      200,
			CloudMinY:        20,
			CloudMaxY:        200,
			StarCount:        50,
			BackgroundLerp:   1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				EnemySpeedMultiplierMax: 1.5,
				PowerupReductionMax:     0.4,
				SpawnIntervalScaleMin:   0.6,
			},
		},
		Biomes: []BiomeConfig{
			{Name: "FOREST", Score: 0, Sky: core.RGB{135, 206, 235}, Ground: core.RGB{34, 139, 34}},
			{Name: "DESERT", Score: 1000, Sky: core.RGB{250, 214, 165}, Ground: core.RGB{210, 180, 120}},
			{Name: "SNOW", Score: 2000, Sky: core.RGB{200, 220, 240}, Ground: core.RGB{235, 240, 250}},
			{Name: "VOLCANO", Score: 3000, Sky: core.RGB{60, 20, 20}, Ground: core.RGB{80, 40, 30}},
		},
		Countdown: CountdownConfig{
			Beats:   3,
			BeatSec: 0.6,
			GoSec:   0.4,
		},
		Commentary: defaultCommentary(),
		Input: InputConfig{
			MoveHold: 0.18,
			JumpHold: 0.15,
		},
	}
}

// DefaultClassicConfig returns the configuration of the original single-life
// game: one hazard kind on the ground, drones in the air, shields and bread.
func DefaultClassicConfig() DuckConfig {
	cfg := DefaultConfig()
	cfg.Name = ProfileClassic
	cfg.Powerups = PowerupConfig{}
	cfg.Health = HealthConfig{MaxLives: 1, Invulnerability: 0}
	cfg.Scoring = ScoringConfig{
		TickInterval: 0.1,
		TickPoints:   1,
		Bread:        100,
		Shield:       50,
		EnemySmash:   50,
	}
	cfg.Spawning.Table = []SpawnBand{
		{Kind: "obstacle", Upto: 35},
		{Kind: "drone", Upto: 50},
		{Kind: "shield", Upto: 55},
		{Kind: "bread", Upto: 100},
	}
	cfg.Entities = map[string]EntityConfig{
		"obstacle": {Width: 48, Height: 48, LiftMin: 72, LiftMax: 72, SpeedMultiplier: 1},
		"drone":    {Width: 48, Height: 32, LiftMin: 100, LiftMax: 180, SpeedMultiplier: 1.2},
		"shield":   {Width: 24, Height: 24, LiftMin: 120, LiftMax: 120, SpeedMultiplier: 1},
		"bread":    {Width: 30, Height: 30, SpeedMultiplier: 1},
	}
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.Progression = ProgressionConfig{Type: "none"}
	cfg.Biomes = []BiomeConfig{
		{Name: "MEADOW", Score: 0, Sky: core.RGB{135, 206, 235}, Ground: core.RGB{34, 139, 34}},
	}
	return cfg
}

func defaultCommentary() CommentaryConfig {
	return CommentaryConfig{
		Enabled:    true,
		Endpoint:   "https://generativelanguage.googleapis.com/",
		APIVersion: "v1beta",
		Model:      "gemini-2.5-flash",
		APIKeyEnv:  "GEMINI_API_KEY",
		Timeout:    4,
		Fallbacks: []FallbackBracket{
			{Below: 500, Text: "Try using the jump button next time."},
			{Below: 1000, Text: "Not bad for a rookie."},
			{Below: 0, Text: "That was actually pretty good!"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a profile.
func GetDefaultYAML(profile string) []byte {
	switch profile {
	case ProfileDuckDash:
		return defaultDuckDashYAML
	case ProfileClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}

// DefaultFor returns the hard-coded default for a profile.
func DefaultFor(profile string) (DuckConfig, bool) {
	switch profile {
	case ProfileDuckDash:
		return DefaultConfig(), true
	case ProfileClassic:
		return DefaultClassicConfig(), true
	default:
		return DuckConfig{}, false
	}
}
