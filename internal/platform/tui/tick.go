// Package tui provides the Bubble Tea integration for the shooter.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps dt after a stall so entities never jump across the screen.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick. It carries the wall-clock time.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks, capped at
// maxFrameDelta. The first tick uses the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
