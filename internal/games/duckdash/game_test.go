package duckdash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
	"github.com/vovakirdan/duckdash/internal/registry"
)

// writeQuietConfig points the adapter at a config without countdown or
// commentary, so the game runs from the first frame.
func writeQuietConfig(t *testing.T, profile string) {
	t.Helper()
	body := "countdown:\n  beats: 0\n  beat_sec: 0\n  go_sec: 0\ncommentary:\n  enabled: false\n"
	path := filepath.Join(t.TempDir(), profile+".yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newTestGame(t *testing.T, profile string) *Game {
	t.Helper()
	writeQuietConfig(t, profile)
	g, err := registry.Create(profile)
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g.(*Game)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{config.ProfileDuckDash, config.ProfileClassic} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
	g, _ := registry.Create(config.ProfileClassic)
	if g.Title() != "Duck Dash Classic" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestGameStepMapsInput(t *testing.T) {
	g := newTestGame(t, config.ProfileDuckDash)
	s := g.Session()
	if s.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", s.Phase())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)
	if s.Player().Grounded {
		t.Fatal("jump action should start a jump")
	}

	// Key repeat inside the hold window must not trigger the double jump.
	vel := s.Player().VelY
	g.Step(in)
	if s.Player().VelY < vel {
		t.Error("repeated jump key should not double jump")
	}

	// Without repeats the hold window expires and releases the jump.
	empty := core.NewInputFrame()
	for i := 0; i < 12; i++ {
		g.Step(empty)
	}
	if g.jumpHeld {
		t.Error("jump should be released after the hold window")
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	x := s.Player().Pos.X
	g.Step(right)
	g.Step(empty)
	if s.Player().Pos.X <= x {
		t.Error("right action should move the player")
	}

	dash := core.NewInputFrame()
	dash.Set(core.ActionDash)
	g.Step(dash)
	if !s.Player().Dashing() {
		t.Error("dash action should dash")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Error("pause action should pause")
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t, config.ProfileClassic)
	s := g.Session()

	atPlayer(s, KindObstacle)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("classic game should end on the first hit")
	}

	score, text, ready := g.GameOver()
	if !ready {
		t.Fatal("fallback commentary should be ready immediately")
	}
	if score != s.FinalScore() || text == "" {
		t.Errorf("game over card = %d %q", score, text)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("render should show the game over card")
	}

	// A new session starts clean.
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2})
	if g.State().GameOver {
		t.Error("reset should start a new run")
	}
	if _, _, ready := g.GameOver(); ready {
		t.Error("game over card should be cleared on reset")
	}
	if g.Session() == s {
		t.Error("reset should build a new session")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, config.ProfileDuckDash)
	g.SetHighScore(1234)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	hud := screen.Row(0)
	for _, want := range []string{"SCORE", "BEST 1234", "♥♥♥", "DASH", "FOREST"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if _, ok := screen.Background(); !ok {
		t.Error("render should set the biome background")
	}
}

func TestSetSkinAndPreset(t *testing.T) {
	SetSkin("nope")
	if skinID != DefaultSkinID {
		t.Error("unknown skin should be ignored")
	}
	SetSkin("mallard")
	t.Cleanup(func() { SetSkin(DefaultSkinID) })

	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })
	g := newTestGame(t, config.ProfileDuckDash)
	if g.skin.ID != "mallard" {
		t.Errorf("skin = %s, want mallard", g.skin.ID)
	}
	if g.cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("initial level = %v, want 0.7", g.cfg.Difficulty.InitialLevel)
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Error("unknown preset should clear the preset")
	}
}

func TestUseSkinOverridesPackageSkin(t *testing.T) {
	writeQuietConfig(t, config.ProfileDuckDash)
	g := New(config.ProfileDuckDash)
	if g.UseSkin("dragon") {
		t.Error("unknown skin should be rejected")
	}
	if !g.UseSkin("ghost") {
		t.Fatal("ghost should be accepted")
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	t.Cleanup(g.Session().Close)
	if g.skin.ID != "ghost" {
		t.Errorf("skin = %s, want ghost", g.skin.ID)
	}
}

func TestStepReportsNewBestOnce(t *testing.T) {
	g := newTestGame(t, config.ProfileDuckDash)
	g.SetHighScore(1)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	st := g.State()
	if st.Countdown || !st.Playing() || st.Lives == 0 {
		t.Fatalf("fresh state = %+v", st)
	}

	hits := 0
	empty := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		if g.Step(empty).NewBest {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("NewBest reported %d times, want 1", hits)
	}
}
