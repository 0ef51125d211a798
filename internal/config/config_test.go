package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, profile := range []string{ProfileDuckDash, ProfileClassic} {
		t.Run(profile, func(t *testing.T) {
			var fromYAML DuckConfig
			if err := yaml.Unmarshal(GetDefaultYAML(profile), &fromYAML); err != nil {
				t.Fatalf("embedded yaml: %v", err)
			}
			want, ok := DefaultFor(profile)
			if !ok {
				t.Fatalf("no hard-coded default for %s", profile)
			}
			if !reflect.DeepEqual(fromYAML, want) {
				t.Errorf("embedded yaml differs from hard-coded default\nyaml: %+v\ngo:   %+v", fromYAML, want)
			}
		})
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if err := DefaultClassicConfig().Validate(); err != nil {
		t.Errorf("classic config invalid: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed.Max = 100
	cfg.Health.MaxLives = 0
	cfg.Spawning.Table[1].Upto = 5
	cfg.Biomes[2].Score = 500

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"speed: max", "max_lives", "not ascending", "SNOW"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestValidateUnknownSpawnKind(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawning.Table = append(cfg.Spawning.Table, SpawnBand{Kind: "ufo", Upto: 120})
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "ufo") {
		t.Errorf("expected error about ufo, got %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "speed:\n  initial: 300\n  max: 900\n  increment: 10\n  interval: 4\nhealth:\n  max_lives: 5\n  invulnerability: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Speed.Initial != 300 || cfg.Health.MaxLives != 5 {
		t.Errorf("overrides not applied: speed=%v lives=%d", cfg.Speed.Initial, cfg.Health.MaxLives)
	}
	if cfg.Physics.Gravity != 2400 {
		t.Errorf("unspecified fields should keep defaults, gravity=%v", cfg.Physics.Gravity)
	}
	if len(cfg.Spawning.Table) != 10 {
		t.Errorf("spawn table should keep defaults, got %d rows", len(cfg.Spawning.Table))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("health:\n  max_lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "max_lives") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadProfileUnknown(t *testing.T) {
	if _, err := LoadProfile("tetris", ""); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("empty preset should not change the config")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}
	if cfg.Health.Invulnerability != 1.5 {
		t.Errorf("hard preset invulnerability = %v, want 1.5", cfg.Health.Invulnerability)
	}

	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !normal.Difficulty.Enabled || normal.Difficulty.InitialLevel != 0 {
		t.Errorf("normal preset: enabled=%v level=%v", normal.Difficulty.Enabled, normal.Difficulty.InitialLevel)
	}
	if normal.Health.Invulnerability != DefaultConfig().Health.Invulnerability {
		t.Errorf("normal preset invulnerability = %v, want baseline", normal.Health.Invulnerability)
	}
	dm := NewDifficultyManager(normal.Difficulty)
	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("normal Level(0) = %v, want 0", got)
	}
	if got := dm.Level(2500, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("normal Level(2500) = %v, want 0.5", got)
	}

	fixed := DefaultConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if _, ok := ParsePreset("normal"); !ok {
		t.Error("normal should parse")
	}
	if p, ok := ParsePreset(""); !ok || p != "" {
		t.Error("empty preset should parse to empty")
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DefaultConfig().Difficulty)
	approx := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	tests := []struct {
		score         int
		level         float64
		enemyMult     float64
		powerupChance float64
		intervalScale float64
	}{
		{0, 0, 1.0, 1.0, 1.0},
		{2500, 0.5, 1.25, 0.7, 0.8},
		{5000, 1, 1.5, 0.4, 0.6},
		{20000, 1, 1.5, 0.4, 0.6},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); !approx(got, tt.level) {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.level)
		}
		if got := dm.EnemySpeedMultiplier(tt.score, 0); !approx(got, tt.enemyMult) {
			t.Errorf("EnemySpeedMultiplier(%d) = %v, want %v", tt.score, got, tt.enemyMult)
		}
		if got := dm.PowerupSpawnChance(tt.score, 0); !approx(got, tt.powerupChance) {
			t.Errorf("PowerupSpawnChance(%d) = %v, want %v", tt.score, got, tt.powerupChance)
		}
		if got := dm.SpawnIntervalScale(tt.score, 0); !approx(got, tt.intervalScale) {
			t.Errorf("SpawnIntervalScale(%d) = %v, want %v", tt.score, got, tt.intervalScale)
		}
	}

	if dm.EnemySpeedMultiplier(5000, 0) != 1.5 {
		t.Error("enemy multiplier should read exactly the configured max at full difficulty")
	}
}

func TestDifficultyManagerDisabledAndPresets(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	dm := NewDifficultyManager(cfg)
	dm.SetInitialLevel(0.3)
	if got := dm.Level(0, 0); got != 0.3 {
		t.Errorf("initial level = %v, want 0.3", got)
	}

	dm.SetEnabled(false)
	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(100000, 0); got != 0.3 {
		t.Errorf("disabled manager should hold the initial level, got %v", got)
	}

	timed := cfg
	timed.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	tm := NewDifficultyManager(timed)
	if got := tm.Level(0, 50); got != 0.5 {
		t.Errorf("time progression level = %v, want 0.5", got)
	}
}
