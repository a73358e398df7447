// Package tui provides the Bubble Tea host for the pathgrid core.
// It owns the terminal loop, maps terminal input onto the core's entry
// points, and renders the core's outbound draw calls.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one core tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
