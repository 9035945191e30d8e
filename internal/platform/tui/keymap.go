package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beatflap/internal/core"
)

// KeyMap defines the key bindings for a play session.
type KeyMap struct {
	Start      key.Binding
	Jump       key.Binding
	Clap       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Clap, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump, k.Clap},
		{k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "flap"),
		),
		Clap: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c/enter", "clap the beat"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key press to a game action for the given phase.
// Keys are phase dependent so that the press that starts a round does not
// also flap, and a clap before the start only starts.
func (k KeyMap) Action(msg tea.KeyMsg, phase core.Phase) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	switch phase {
	case core.PhaseNotStarted:
		if key.Matches(msg, k.Start) || key.Matches(msg, k.Clap) {
			return core.ActionStart
		}
	case core.PhaseRunning:
		if key.Matches(msg, k.Clap) {
			return core.ActionClap
		}
		if key.Matches(msg, k.Jump) {
			return core.ActionJump
		}
	case core.PhaseOver:
		if key.Matches(msg, k.Restart) {
			return core.ActionRestart
		}
	}

	return core.ActionNone
}
