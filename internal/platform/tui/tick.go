// Package tui provides the Bubble Tea host for beatflap.
// It schedules simulation ticks, maps keys and beats to game input,
// and turns the game's screen buffer into terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// PulseMsg carries a beat from an asynchronous pulse source.
type PulseMsg struct {
	At   time.Time
	Jump bool
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
