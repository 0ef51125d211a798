package duckdash

import (
	"sync"
	"testing"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

const dt = 1.0 / 60

// scriptRand replays fixed draws. Empty scripts return 0.5 and 0.
type scriptRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

type overEvent struct {
	score int
	text  string
}

// recorder captures every outbound hook.
type recorder struct {
	mu     sync.Mutex
	scores []int
	lives  []int
	overs  []overEvent
	cues   []Cue
	overCh chan overEvent
}

func newRecorder() *recorder {
	return &recorder{overCh: make(chan overEvent, 4)}
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnScoreChanged:  func(s int) { r.scores = append(r.scores, s) },
		OnHealthChanged: func(l int) { r.lives = append(r.lives, l) },
		OnGameOver: func(s int, text string) {
			r.mu.Lock()
			r.overs = append(r.overs, overEvent{s, text})
			r.mu.Unlock()
			r.overCh <- overEvent{s, text}
		},
		OnCue: func(c Cue) { r.cues = append(r.cues, c) },
	}
}

func (r *recorder) gameOvers() []overEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]overEvent(nil), r.overs...)
}

func (r *recorder) hasCue(kind CueKind, text string) bool {
	for _, c := range r.cues {
		if c.Kind == kind && (text == "" || c.Text == text) {
			return true
		}
	}
	return false
}

// quietConfig has no countdown, no timed spawns and no clouds, so tests
// decide exactly what is in the world.
func quietConfig() config.DuckConfig {
	cfg := config.DefaultConfig()
	cfg.Countdown = config.CountdownConfig{}
	cfg.Spawning.MinInterval = 1e6
	cfg.Spawning.MaxInterval = 1e6
	cfg.Environment.CloudMinInterval = 1e6
	cfg.Environment.CloudMaxInterval = 1e6
	cfg.Commentary.Enabled = false
	return cfg
}

func newTestSession(t *testing.T, cfg config.DuckConfig) (*Session, *recorder) {
	t.Helper()
	rec := newRecorder()
	s, err := NewSession(cfg, &scriptRand{}, rec.hooks())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	return s, rec
}

// put places an entity of kind centered at (x, y), scrolling at the
// session speed.
func put(s *Session, kind Kind, x, y float64) *Entity {
	ec := s.cfg.Entities[kind.String()]
	return s.world.Add(newEntity(kind, ec, core.V(x, y), s.speed, s.cfg.Playfield.OffscreenMargin))
}

// atPlayer places kind on top of the player.
func atPlayer(s *Session, kind Kind) *Entity {
	return put(s, kind, s.player.Pos.X, s.player.Pos.Y)
}

func tickFor(s *Session, seconds float64) {
	n := int(seconds/dt + 0.5)
	for i := 0; i < n; i++ {
		s.Tick(dt)
	}
}
