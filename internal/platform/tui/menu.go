package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckdash/internal/core"
	"github.com/vovakirdan/duckdash/internal/games/duckdash"
	"github.com/vovakirdan/duckdash/internal/registry"
	"github.com/vovakirdan/duckdash/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the title menu.
// Up/down pick a game, left/right cycle through unlocked skins.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	skins          []duckdash.Skin
	skinCursor     int
	best           int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.loadSkins()
	return m
}

// loadSkins collects the unlocked skins in catalog order and restores the
// last selection.
func (m *MenuModel) loadSkins() {
	unlocked := map[string]bool{duckdash.DefaultSkinID: true}
	selected := ""
	if m.store != nil {
		ids, err := m.store.UnlockedSkins()
		if err != nil {
			log.Warn("cannot load skins", "err", err)
		}
		for _, id := range ids {
			unlocked[id] = true
		}
		if selected, err = m.store.SelectedSkin(); err != nil {
			log.Warn("cannot load selected skin", "err", err)
		}
		if m.best, err = m.store.BestOverall(); err != nil {
			log.Warn("cannot load high score", "err", err)
		}
	}

	m.skins = m.skins[:0]
	for _, s := range duckdash.Skins() {
		if unlocked[s.ID] {
			if s.ID == selected {
				m.skinCursor = len(m.skins)
			}
			m.skins = append(m.skins, s)
		}
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if n := len(m.skins); n > 0 {
			m.skinCursor = (m.skinCursor - 1 + n) % n
		}

	case MenuActionRight:
		if n := len(m.skins); n > 0 {
			m.skinCursor = (m.skinCursor + 1) % n
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			if m.store != nil {
				if err := m.store.SelectSkin(m.Skin()); err != nil {
					log.Warn("cannot save selected skin", "err", err)
				}
			}
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "D U C K   D A S H", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("BEST %d", m.best), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(centerStyled(menuActiveStyle, "> "+item.Title+" <", m.width))
		} else {
			b.WriteString(centerText(item.Title, m.width))
		}
		b.WriteString("\n")
	}

	if len(m.skins) > 0 {
		skin := m.skins[m.skinCursor]
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("< SKIN: %s >  (%d/%d)", skin.Name, m.skinCursor+1, len(m.skins)), m.width))
		b.WriteString("\n")
		if next, ok := m.nextLockedSkin(); ok {
			b.WriteString(centerStyled(menuHintStyle, fmt.Sprintf("next skin at %d points", next.UnlockScore), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Game  |  Left/Right: Skin  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(menuHintStyle, controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// nextLockedSkin returns the cheapest skin not yet unlocked.
func (m MenuModel) nextLockedSkin() (duckdash.Skin, bool) {
	have := make(map[string]bool, len(m.skins))
	for _, s := range m.skins {
		have[s.ID] = true
	}
	for _, s := range duckdash.Skins() {
		if !have[s.ID] {
			return s, true
		}
	}
	return duckdash.Skin{}, false
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Skin returns the id of the highlighted skin.
func (m MenuModel) Skin() string {
	if len(m.skins) == 0 {
		return duckdash.DefaultSkinID
	}
	return m.skins[m.skinCursor].ID
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	SkinID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
		SkinID: m.Skin(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
