// Package tui provides the Bubble Tea presentation layer: input
// mapping, the elapsed-time clock, and board rendering. The grid engine
// never sees any of this; the model calls into it and re-renders from
// the returned state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg advances the cosmetic elapsed-time display by one second.
type ClockMsg time.Time

// clockCmd returns a command that sends a ClockMsg after one second.
// The handler reschedules it while the game is active and stops once
// the game is over, freezing the time display.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
