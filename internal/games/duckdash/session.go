package duckdash

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/duckdash/internal/commentary"
	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

// Phase is the coarse lifecycle of a session.
type Phase uint8

const (
	PhaseCountdown Phase = iota
	PhaseRunning
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseRunning:
		return "running"
	case PhaseDead:
		return "dead"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// Session is one playthrough. It owns the world, the player and every timer;
// a new session shares nothing with the previous one.
type Session struct {
	cfg   *config.DuckConfig
	hooks Hooks
	rng   Rand

	world      *World
	player     *Player
	spawner    *Spawner
	difficulty *config.DifficultyManager
	biome      *BiomeController
	resolver   *commentary.Resolver

	phase  Phase
	paused bool

	elapsed    float64
	speed      float64
	speedTimer float64
	scoreTimer float64
	score      int
	finalScore int
	progress   float64

	beat      int
	beatTimer float64

	overOnce sync.Once
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewSession validates cfg and builds a session in the countdown phase.
// A nil rng uses a time-seeded source.
func NewSession(cfg config.DuckConfig, rng Rand, hooks Hooks) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("duckdash: invalid config: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &cfg
	spawner, err := NewSpawner(c, rng)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		cfg:        c,
		hooks:      hooks,
		rng:        rng,
		world:      NewWorld(),
		player:     newPlayer(c),
		spawner:    spawner,
		difficulty: config.NewDifficultyManager(c.Difficulty),
		biome:      NewBiomeController(c.Biomes, c.Environment.BackgroundLerp),
		speed:      c.Speed.Initial,
		ctx:        ctx,
		cancel:     cancel,
	}
	s.progress = s.difficulty.Level(0, 0)
	spawner.prefillEnvironment(s)

	if c.Countdown.Beats <= 0 && c.Countdown.GoSec <= 0 {
		s.phase = PhaseRunning
	} else {
		s.cue(Cue{Kind: CueCountdown, Text: s.CountdownLabel()})
	}
	return s, nil
}

// SetCommentary attaches the game-over commentary resolver. Without one, the
// fallback line is used and the game-over event fires synchronously.
func (s *Session) SetCommentary(r *commentary.Resolver) {
	s.resolver = r
}

// Close abandons any pending commentary lookup.
func (s *Session) Close() {
	s.cancel()
}

// Tick advances the simulation by dt seconds.
func (s *Session) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	switch {
	case s.phase == PhaseDead:
		return
	case s.phase == PhaseCountdown:
		s.tickCountdown(dt)
		return
	case s.paused:
		return
	}

	s.elapsed += dt
	p := s.player

	p.updateTimers(dt)
	p.moveHorizontal(dt)
	if p.moveVertical(dt, s.platforms()) {
		s.cue(Cue{Kind: CueDust, Pos: core.V(p.Pos.X, p.Pos.Y+p.H/2)})
		s.shake(2)
	}

	s.stepWorld(dt)
	s.applyMagnet(dt)
	s.spawner.Update(dt, s)
	s.spawner.UpdateEnvironment(dt, s)

	s.resolveCollisions()
	if s.phase == PhaseDead {
		s.world.Sweep()
		return
	}

	s.progress = s.difficulty.Level(s.score, s.elapsed)
	if s.biome.Update(s.score, dt) {
		b := s.biome.Current()
		s.cue(Cue{Kind: CueZone, Text: b.Name + " ZONE", RGB: b.Sky})
	}

	s.tickScore(dt)
	s.tickSpeed(dt)
	s.world.Sweep()
}

func (s *Session) tickCountdown(dt float64) {
	cd := s.cfg.Countdown
	s.beatTimer += dt
	for s.phase == PhaseCountdown {
		hold := cd.BeatSec
		if s.beat >= cd.Beats {
			hold = cd.GoSec
		}
		if s.beatTimer < hold {
			return
		}
		s.beatTimer -= hold
		s.beat++
		if s.beat > cd.Beats {
			s.phase = PhaseRunning
			s.beatTimer = 0
			return
		}
		s.cue(Cue{Kind: CueCountdown, Text: s.CountdownLabel()})
	}
}

func (s *Session) tickScore(dt float64) {
	sc := s.cfg.Scoring
	s.scoreTimer += dt
	if s.scoreTimer >= sc.TickInterval {
		s.scoreTimer = math.Mod(s.scoreTimer, sc.TickInterval)
		s.addPoints(sc.TickPoints)
	}
}

func (s *Session) tickSpeed(dt float64) {
	sp := s.cfg.Speed
	if sp.Interval <= 0 || s.speed >= sp.Max {
		return
	}
	s.speedTimer += dt
	if s.speedTimer >= sp.Interval {
		s.speedTimer -= sp.Interval
		s.speed = math.Min(s.speed+sp.Increment, sp.Max)
	}
}

func (s *Session) running() bool {
	return s.phase == PhaseRunning && !s.paused
}

// JumpPressed starts a jump, or the banked double jump while airborne.
func (s *Session) JumpPressed() {
	if !s.running() {
		return
	}
	p := s.player
	if jumped, double := p.jump(); jumped {
		c := Cue{Kind: CueJump, Pos: p.Pos}
		if double {
			c.Text = "double"
		}
		s.cue(c)
	}
}

// JumpReleased cuts the ascent short.
func (s *Session) JumpReleased() {
	if !s.running() {
		return
	}
	s.player.releaseJump()
}

// DashPressed starts a dash when the cooldown allows it.
func (s *Session) DashPressed() {
	if !s.running() {
		return
	}
	if s.player.dash() {
		s.cue(Cue{Kind: CueDashBoom, Pos: s.player.Pos})
		s.shake(5)
	}
}

// PauseToggled flips the pause state. It has no effect outside a run.
func (s *Session) PauseToggled() {
	if s.phase != PhaseRunning {
		return
	}
	s.paused = !s.paused
}

// MoveLeft sets whether the left direction is held.
func (s *Session) MoveLeft(active bool) {
	s.player.moveLeft = active
}

// MoveRight sets whether the right direction is held.
func (s *Session) MoveRight(active bool) {
	s.player.moveRight = active
}

// addPoints grants n points. Score never decreases and is frozen after death.
func (s *Session) addPoints(n int) {
	if n <= 0 || s.phase == PhaseDead {
		return
	}
	s.score += n
	if s.hooks.OnScoreChanged != nil {
		s.hooks.OnScoreChanged(s.score)
	}
}

func (s *Session) healthChanged() {
	if s.hooks.OnHealthChanged != nil {
		s.hooks.OnHealthChanged(s.player.Lives)
	}
}

// die ends the run. The game-over event carries the score frozen here and
// fires once, after the commentary lookup settles.
func (s *Session) die() {
	if s.phase == PhaseDead {
		return
	}
	s.phase = PhaseDead
	s.paused = false
	s.finalScore = s.score

	score := s.finalScore
	if !s.resolver.Live() {
		s.emitGameOver(score, s.resolver.Fallback(score))
		return
	}
	r := s.resolver
	ctx := s.ctx
	go func() {
		text := r.Resolve(ctx, score)
		s.emitGameOver(score, text)
	}()
}

func (s *Session) emitGameOver(score int, text string) {
	s.overOnce.Do(func() {
		if s.hooks.OnGameOver != nil {
			s.hooks.OnGameOver(score, text)
		}
	})
}

func (s *Session) platforms() []*Entity {
	var out []*Entity
	s.world.Live(CategoryPlatform, func(e *Entity) {
		out = append(out, e)
	})
	return out
}

func pointsLabel(n int) string {
	return fmt.Sprintf("+%d", n)
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether the run is paused.
func (s *Session) Paused() bool { return s.paused }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// FinalScore returns the score frozen at death.
func (s *Session) FinalScore() int { return s.finalScore }

// Lives returns the player's remaining lives.
func (s *Session) Lives() int { return s.player.Lives }

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 { return s.speed }

// Elapsed returns the running time in seconds, excluding countdown and pauses.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Progress returns the difficulty level in [0, 1].
func (s *Session) Progress() float64 { return s.progress }

// Biome returns the current biome.
func (s *Session) Biome() config.BiomeConfig { return s.biome.Current() }

// BiomeIndex returns the current biome index.
func (s *Session) BiomeIndex() int { return s.biome.Index() }

// Background returns the eased ambient background color.
func (s *Session) Background() core.RGB { return s.biome.Background() }

// Player returns the player.
func (s *Session) Player() *Player { return s.player }

// World returns the entity registry.
func (s *Session) World() *World { return s.world }

// Spawner returns the spawner.
func (s *Session) Spawner() *Spawner { return s.spawner }

// Config returns the session configuration.
func (s *Session) Config() *config.DuckConfig { return s.cfg }

// CountdownLabel returns the current countdown text, or "" once running.
func (s *Session) CountdownLabel() string {
	if s.phase != PhaseCountdown {
		return ""
	}
	if s.beat >= s.cfg.Countdown.Beats {
		return "GO!"
	}
	return fmt.Sprintf("%d", s.cfg.Countdown.Beats-s.beat)
}
