package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the game by one step.
type TickMsg time.Time

// nextTick schedules one TickMsg after d.
func nextTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(at time.Time) tea.Msg { return TickMsg(at) })
}
