package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckdash/internal/core"
	"github.com/vovakirdan/duckdash/internal/games/duckdash"
	"github.com/vovakirdan/duckdash/internal/registry"
	"github.com/vovakirdan/duckdash/internal/storage"
)

// highScorer is implemented by games that show the stored best in their HUD.
type highScorer interface {
	SetHighScore(score int)
}

// skinUser is implemented by games with selectable skins.
type skinUser interface {
	UseSkin(id string) bool
}

// closer is implemented by games holding background work.
type closer interface {
	Close()
}

// ModelOptions are per-player settings for a game model.
type ModelOptions struct {
	Player string // Name recorded on the leaderboard
	Skin   string // Skin id, empty for the game default
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	exitOnBack bool
	scoreSaved bool   // Whether score has been saved for current game over
	notice     string // Leaderboard and unlock news for the last run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if strings.TrimSpace(opts.Player) == "" {
		opts.Player = "duck"
	}
	if opts.Skin != "" {
		if g, ok := game.(skinUser); ok && !g.UseSkin(opts.Skin) {
			log.Warn("unknown skin", "skin", opts.Skin)
		}
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.loadHighScore()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales its playfield to the screen, so no reset is needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only from a paused or finished run
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.gameState.GameOver && m.inputFrame.Any(core.ActionRestart, core.ActionConfirm) {
		m.config.Seed = time.Now().UnixNano()
		m.loadHighScore()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.notice = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.NewBest {
		log.Debug("best score passed", "game", m.game.ID(), "player", m.opts.Player, "score", result.State.Score)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.gameState.Score > 0 {
			m.recordRun(m.gameState.Score)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// loadHighScore pushes the stored best into the game HUD.
func (m *Model) loadHighScore() {
	g, ok := m.game.(highScorer)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		log.Warn("cannot load high score", "game", m.game.ID(), "err", err)
		return
	}
	g.SetHighScore(best)
}

// recordRun saves a finished run and unlocks any skins it earned.
func (m *Model) recordRun(score int) {
	if m.store == nil {
		return
	}

	var news []string
	rank, err := m.store.SaveScore(m.game.ID(), m.opts.Player, score)
	switch {
	case err != nil:
		log.Warn("cannot save score", "game", m.game.ID(), "err", err)
	case rank == 1:
		news = append(news, "NEW HIGH SCORE!")
	case rank > 1:
		news = append(news, fmt.Sprintf("#%d ON THE LEADERBOARD", rank))
	}

	added, err := m.store.UnlockSkins(duckdash.UnlockedSkins(score)...)
	if err != nil {
		log.Warn("cannot unlock skins", "err", err)
	}
	for _, id := range added {
		if id == duckdash.DefaultSkinID {
			continue
		}
		skin, _ := duckdash.SkinByID(id)
		news = append(news, "UNLOCKED "+strings.ToUpper(skin.Name))
	}

	m.notice = strings.Join(news, "  ")
	log.Info("run finished", "game", m.game.ID(), "player", m.opts.Player, "score", score, "rank", rank)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".duckdash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || (m.backToMenu && m.exitOnBack) {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.notice != "" {
		m.screen.DrawTextCenteredColor(m.screen.Height()-2, m.notice, core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Close releases the game's background work.
func (m Model) Close() {
	if g, ok := m.game.(closer); ok {
		g.Close()
	}
}

// Notice returns the leaderboard and unlock news for the last run.
func (m Model) Notice() string {
	return m.notice
}

// RunResult reports how a standalone game ended.
type RunResult struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (RunResult, error) {
	model := NewModel(game, store, cfg, opts)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	model.Close()
	if err != nil {
		return RunResult{Config: cfg}, err
	}
	m, ok := final.(Model)
	if !ok {
		return RunResult{Config: cfg}, nil
	}
	return RunResult{BackToMenu: m.backToMenu, Config: m.config}, nil
}
