package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
	"github.com/vovakirdan/duckdash/internal/registry"
	"github.com/vovakirdan/duckdash/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game, err := registry.Create(config.ProfileDuckDash)
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, ModelOptions{Player: "ann"})
	t.Cleanup(m.Close)
	return m
}

func TestRecordRun(t *testing.T) {
	store := openStore(t)
	m := newModel(t, store)

	m.recordRun(2600)
	if !strings.Contains(m.Notice(), "NEW HIGH SCORE!") {
		t.Errorf("notice = %q, want a new high score", m.Notice())
	}
	for _, want := range []string{"UNLOCKED MALLARD", "UNLOCKED GHOST"} {
		if !strings.Contains(m.Notice(), want) {
			t.Errorf("notice = %q, missing %q", m.Notice(), want)
		}
	}

	scores, err := store.TopScores(config.ProfileDuckDash, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Name != "ann" || scores[0].Score != 2600 {
		t.Errorf("scores = %+v", scores)
	}

	ids, _ := store.UnlockedSkins()
	if len(ids) != 3 {
		t.Errorf("unlocked = %v, want classic, mallard and ghost", ids)
	}

	// A lower run places second and unlocks nothing new.
	m.recordRun(100)
	if m.Notice() != "#2 ON THE LEADERBOARD" {
		t.Errorf("notice = %q", m.Notice())
	}
}

func TestModelDefaultsPlayerName(t *testing.T) {
	game, _ := registry.Create(config.ProfileClassic)
	m := NewModel(game, nil, core.DefaultConfig(), ModelOptions{Player: "  "})
	if m.opts.Player != "duck" {
		t.Errorf("player = %q, want duck", m.opts.Player)
	}
	if m.config.Seed == 0 {
		t.Error("seed should be filled in")
	}
	// Without a store a finished run is simply not recorded.
	m.recordRun(500)
	if m.Notice() != "" {
		t.Errorf("notice = %q, want none", m.Notice())
	}
}

func TestModelBackOnlyWhenPausedOrOver(t *testing.T) {
	m := newModel(t, nil)
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	m.gameState.Paused = true
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(t, nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColor(0, 0, "SCORE 10", core.ColorBrightWhite)
	s.DrawTextColor(0, 1, "duck", core.ColorDefault)
	s.SetBackground(core.RGB{10, 20, 30})

	out := RenderScreen(s)
	for _, want := range []string{"SCORE 10", "duck"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rows = %d, want 2", got+1)
	}
}
