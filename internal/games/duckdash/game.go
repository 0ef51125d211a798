// Package duckdash implements Duck Dash, a side-scrolling runner: a duck
// auto-runs through spawned hazards, collects bread and power-ups, and
// survives on a small pool of lives while the world speeds up.
package duckdash

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckdash/internal/commentary"
	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
	"github.com/vovakirdan/duckdash/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var skinID = DefaultSkinID
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config default.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetSkin selects the skin used by sessions started afterwards.
func SetSkin(id string) {
	if _, ok := SkinByID(id); ok {
		skinID = id
	}
}

// SetLogger sets the logger used for config and commentary problems.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// gameOver is the terminal card, filled in when the commentary settles.
type gameOver struct {
	ready bool
	score int
	text  string
}

// Game adapts a Session to the arcade registry: it converts input frames
// into session input events and steps the session at the host tick rate.
type Game struct {
	profile string
	title   string

	runtime  core.RuntimeConfig
	cfg      config.DuckConfig
	session  *Session
	resolver *commentary.Resolver
	skin     Skin
	skinID   string
	dt       float64

	// Terminals report presses but not releases, so held keys are modeled
	// as short hold windows refreshed by key repeat.
	leftHold  float64
	rightHold float64
	jumpHold  float64
	jumpHeld  bool

	fx        *effects
	best      int
	startBest int
	beatBest  bool
	hurtFlash float64
	frame     int

	mu   sync.Mutex
	gen  int
	over gameOver
}

// New creates a Duck Dash game for a config profile.
func New(profile string) *Game {
	title := "Duck Dash"
	if profile == config.ProfileClassic {
		title = "Duck Dash Classic"
	}
	return &Game{profile: profile, title: title}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.profile
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.best = score
}

// UseSkin selects the skin for this game only, overriding SetSkin.
// It reports false for unknown ids.
func (g *Game) UseSkin(id string) bool {
	if _, ok := SkinByID(id); !ok {
		return false
	}
	g.skinID = id
	return true
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.session
}

// Reset discards the current session and starts a new one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.session != nil {
		g.session.Close()
	}

	g.cfg = g.loadConfig()
	if g.resolver == nil {
		g.resolver = commentary.FromConfig(g.cfg.Commentary, logger)
	}
	id := skinID
	if g.skinID != "" {
		id = g.skinID
	}
	g.skin, _ = SkinByID(id)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1 / float64(tickRate)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.leftHold, g.rightHold, g.jumpHold = 0, 0, 0
	g.jumpHeld = false
	g.hurtFlash = 0
	g.frame = 0
	g.startBest = g.best
	g.beatBest = false
	g.fx = newEffects()

	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.over = gameOver{}
	g.mu.Unlock()

	hooks := Hooks{
		OnScoreChanged: func(score int) {
			if score > g.best {
				g.best = score
			}
		},
		OnHealthChanged: func(int) {
			g.hurtFlash = 0.3
		},
		OnGameOver: func(score int, text string) {
			g.mu.Lock()
			defer g.mu.Unlock()
			if g.gen == gen {
				g.over = gameOver{ready: true, score: score, text: text}
			}
		},
		OnCue: func(c Cue) {
			g.fx.add(c)
		},
	}

	s, err := NewSession(g.cfg, rand.New(rand.NewSource(seed)), hooks)
	if err != nil {
		logger.Warn("invalid config, using defaults", "game", g.profile, "err", err)
		g.cfg, _ = config.DefaultFor(g.profile)
		s, err = NewSession(g.cfg, rand.New(rand.NewSource(seed)), hooks)
		if err != nil {
			panic(err) // Built-in defaults always validate
		}
	}
	s.SetCommentary(g.resolver)
	g.session = s
}

func (g *Game) loadConfig() config.DuckConfig {
	cfg, err := config.LoadProfile(g.profile, configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "game", g.profile, "err", err)
		cfg, _ = config.DefaultFor(g.profile)
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	if s == nil {
		return core.StepResult{}
	}
	g.frame++

	if in.Has(core.ActionPause) {
		s.PauseToggled()
	}
	g.applyInput(in)
	s.Tick(g.dt)

	if !s.Paused() {
		g.fx.update(g.dt)
		g.hurtFlash = max(g.hurtFlash-g.dt, 0)
	}

	res := core.StepResult{State: g.State()}
	if !g.beatBest && g.startBest > 0 && res.State.Score > g.startBest {
		g.beatBest = true
		res.NewBest = true
	}
	return res
}

// applyInput converts one frame of actions into session events.
func (g *Game) applyInput(in core.InputFrame) {
	s := g.session
	hold := g.cfg.Input

	if in.Has(core.ActionLeft) {
		g.leftHold = hold.MoveHold
		g.rightHold = 0
	} else {
		g.leftHold = max(g.leftHold-g.dt, 0)
	}
	if in.Has(core.ActionRight) {
		g.rightHold = hold.MoveHold
		g.leftHold = 0
	} else {
		g.rightHold = max(g.rightHold-g.dt, 0)
	}
	s.MoveLeft(g.leftHold > 0)
	s.MoveRight(g.rightHold > 0)

	if in.Has(core.ActionJump) {
		if !g.jumpHeld {
			s.JumpPressed()
			g.jumpHeld = true
		}
		g.jumpHold = hold.JumpHold
	} else if g.jumpHeld {
		g.jumpHold -= g.dt
		if g.jumpHold <= 0 {
			s.JumpReleased()
			g.jumpHeld = false
			g.jumpHold = 0
		}
	}

	if in.Has(core.ActionDash) {
		s.DashPressed()
	}
}

// Close stops the current session and any pending commentary lookup.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
}

// GameOver returns the final score and commentary once the card is ready.
func (g *Game) GameOver() (score int, text string, ready bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over.score, g.over.text, g.over.ready
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:     g.session.Score(),
		Lives:     g.session.Lives(),
		Countdown: phase == PhaseCountdown,
		GameOver:  phase == PhaseDead,
		Paused:    g.session.Paused(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          config.ProfileDuckDash,
		Title:       "Duck Dash",
		Description: "Three lives, dash, power-ups and biomes",
	}, func() registry.Game {
		return New(config.ProfileDuckDash)
	})
	registry.Register(registry.GameInfo{
		ID:          config.ProfileClassic,
		Title:       "Duck Dash Classic",
		Description: "One life, tables and drones",
	}, func() registry.Game {
		return New(config.ProfileClassic)
	})
}
