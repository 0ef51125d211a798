package duckdash

import "github.com/vovakirdan/duckdash/internal/core"

// CueKind identifies a cosmetic signal for the presentation layer.
type CueKind uint8

const (
	CueDust CueKind = iota
	CueCrumbs
	CueExplosion
	CueFloatingText
	CueDashBoom
	CueShake
	CueZone
	CueCountdown
	CueJump
)

// Cue is a fire-and-forget presentation event. Only the fields relevant to
// the kind are set.
type Cue struct {
	Kind      CueKind
	Pos       core.Vec2
	Text      string
	Color     core.Color
	Magnitude float64 // Shake strength
	RGB       core.RGB
}

// Hooks are the outbound callbacks of a session. Nil hooks are skipped.
type Hooks struct {
	// OnScoreChanged fires on every point award and on each scoring tick.
	OnScoreChanged func(score int)
	// OnHealthChanged fires on every life gain or loss.
	OnHealthChanged func(lives int)
	// OnGameOver fires exactly once per session, possibly from another goroutine.
	OnGameOver func(finalScore int, commentary string)
	OnCue      func(Cue)
}

func (s *Session) cue(c Cue) {
	if s.hooks.OnCue != nil {
		s.hooks.OnCue(c)
	}
}

func (s *Session) floatText(text string, pos core.Vec2, color core.Color) {
	s.cue(Cue{Kind: CueFloatingText, Text: text, Pos: pos, Color: color})
}

func (s *Session) shake(mag float64) {
	s.cue(Cue{Kind: CueShake, Magnitude: mag})
}
