package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duckdash/internal/games/duckdash"
	"github.com/vovakirdan/duckdash/internal/registry"
	"github.com/vovakirdan/duckdash/internal/storage"
)

// leaderboardKeys are the bindings shown in the leaderboard help bar.
type leaderboardKeys struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k leaderboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Back, k.Quit}
}

func (k leaderboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newLeaderboardKeys() leaderboardKeys {
	return leaderboardKeys{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "d", "tab"),
			key.WithHelp("→/tab", "next variant"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "a", "shift+tab"),
			key.WithHelp("←", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel shows the top five runs of each variant together with
// the lifetime records kept in the plays table.
type ScoreboardModel struct {
	store   *storage.Store
	player  string // Rows with this name are marked
	games   []registry.GameInfo
	current int

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	skins  int // Unlocked skins, default included

	table     table.Model
	help      help.Model
	keys      leaderboardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the leaderboard screen. Entries named player
// are marked; an empty player marks nothing.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		player: player,
		games:  registry.List(),
		help:   help.New(),
		keys:   newLeaderboardKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newLeaderboardTable(width)
	m.load()
	return m
}

func newLeaderboardTable(width int) table.Model {
	nameW := 14
	if width >= 70 {
		nameW = 20
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Name", Width: nameW},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 12},
		}),
		table.WithHeight(storage.LeaderboardSize+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No cursor: the board is read-only and always fits.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// load reads the current variant's board, stats and skin count.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.skins = nil, nil, 1
	if m.store == nil || len(m.games) == 0 {
		m.table.SetRows(nil)
		return
	}

	id := m.games[m.current].ID
	scores, err := m.store.TopScores(id, storage.LeaderboardSize)
	if err != nil {
		log.Warn("cannot load leaderboard", "game", id, "err", err)
	}
	m.scores = scores

	if m.stats, err = m.store.GetGameStats(id); err != nil {
		log.Warn("cannot load stats", "game", id, "err", err)
	}
	if ids, err := m.store.UnlockedSkins(); err == nil {
		m.skins = countSkins(ids)
	}

	m.table.SetRows(m.rows())
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		name := s.Name
		if name == "" {
			name = "-"
		}
		if m.player != "" && s.Name == m.player {
			name = "* " + name
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			name,
			strconv.Itoa(s.Score),
			s.CreatedAt.Local().Format("Jan 02 2006"),
		})
	}
	return rows
}

// countSkins counts catalog skins among ids, the default skin always included.
func countSkins(ids []string) int {
	have := map[string]bool{duckdash.DefaultSkinID: true}
	for _, id := range ids {
		if _, ok := duckdash.SkinByID(id); ok {
			have[id] = true
		}
	}
	return len(have)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchVariant(1)
		case key.Matches(msg, m.keys.Prev):
			m.switchVariant(-1)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newLeaderboardTable(msg.Width)
		m.table.SetRows(m.rows())
	}
	return m, nil
}

func (m *ScoreboardModel) switchVariant(delta int) {
	n := len(m.games)
	if n < 2 {
		return
	}
	m.current = (m.current + delta + n) % n
	m.load()
}

// Variant returns the id of the variant on screen.
func (m ScoreboardModel) Variant() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.current].ID
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(boardTitleStyle, fmt.Sprintf("TOP %d", storage.LeaderboardSize), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		boardFrameStyle.Render(m.boardContent()),
		"  ",
		boardFrameStyle.Render(m.recordsContent()),
	)
	if lipgloss.Width(board) > m.width {
		board = lipgloss.JoinVertical(lipgloss.Left,
			boardFrameStyle.Render(m.boardContent()),
			boardFrameStyle.Render(m.recordsContent()),
		)
	}
	for _, line := range strings.Split(board, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(boardDimStyle, m.help.View(m.keys), m.width))
	return b.String()
}

func (m ScoreboardModel) boardContent() string {
	if len(m.scores) == 0 {
		return boardDimStyle.Italic(true).Padding(1, 2).
			Render("No runs yet.\nGo feed the duck some bread!")
	}
	return m.table.View()
}

func (m ScoreboardModel) recordsContent() string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Records"))
	b.WriteString("\n\n")

	st := m.stats
	if st == nil || st.GamesCount == 0 {
		b.WriteString(boardDimStyle.Render("no runs"))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Best   %d\n", st.HighScore)
		fmt.Fprintf(&b, "Runs   %d\n", st.GamesCount)
		fmt.Fprintf(&b, "Avg    %.0f\n", st.AvgScore)
		fmt.Fprintf(&b, "Last   %s\n", st.LastPlayed.Local().Format("Jan 02 15:04"))
	}

	fmt.Fprintf(&b, "\nSkins  %d/%d", m.skins, len(duckdash.Skins()))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the leaderboard screen on its own.
// It reports whether the user went back rather than quitting.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, player, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
