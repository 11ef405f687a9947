// Package tui runs a game inside a Bubble Tea program: a fixed-rate tick
// loop, key bindings, and colored rendering of the game's cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the game by one step.
type TickMsg time.Time

// tickInterval returns the wall-clock time between steps at rate Hz.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
