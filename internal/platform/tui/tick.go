// Package tui hosts Duck Dash in a terminal: the Bubble Tea tick loop,
// key mapping, rendering, the title menu, the leaderboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	minTickRate = 10
	maxTickRate = 240
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the host frame time for a tick rate, clamped to a
// range the terminal can keep up with.
func tickInterval(tickRate int) time.Duration {
	switch {
	case tickRate <= 0:
		tickRate = 60
	case tickRate < minTickRate:
		tickRate = minTickRate
	case tickRate > maxTickRate:
		tickRate = maxTickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
