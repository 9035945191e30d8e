package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beatflap/internal/core"
	"github.com/vovakirdan/beatflap/internal/registry"
	"github.com/vovakirdan/beatflap/internal/rhythm"
	"github.com/vovakirdan/beatflap/internal/storage"
)

// Options configures a play session beyond the runtime config.
type Options struct {
	Logger       *log.Logger // nil discards
	Bell         bool        // Ring the terminal bell on jump, score and game over
	MetronomeBPM int         // Feed a fixed-tempo beat when > 0
}

// Model is the Bubble Tea model for a beatflap session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	clock      core.Clock
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	bell       bool
	bellOut    io.Writer
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		clock:      core.NewClock(time.Now()),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		bell:       opts.Bell,
		bellOut:    os.Stderr,
		inputFrame: core.NewInputFrame(),
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session ready", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout(msg.Width, msg.Height)
		return m, nil

	case PulseMsg:
		m.game.Pulse(core.Pulse{At: m.clock.At(msg.At), Jump: msg.Jump})
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	switch action := m.keys.Action(msg, m.gameState.Phase); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionClap:
		// The keyboard is a pulse source; stamp the beat now, not at the next tick
		m.game.Pulse(core.Pulse{At: m.clock.Now(), Jump: true})
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// layout sizes the game screen to the terminal minus the help footer.
func (m *Model) layout(width, height int) {
	m.help.Width = width
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(width, max(height-footer, 0))
}

// handleTick processes simulation ticks.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	prev := m.gameState.Phase

	result := m.game.Step(m.clock.At(t), m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if prev != core.PhaseRunning && m.gameState.Phase == core.PhaseRunning {
		m.logger.Info("round started", "game", m.game.ID(), "best", m.gameState.Best)
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.logEvents(result.Events) && m.bell {
		cmds = append(cmds, bellCmd(m.bellOut))
	}

	return m, tea.Batch(cmds...)
}

// logEvents records the step's cues and reports whether any of them is audible.
func (m Model) logEvents(events []core.Event) (audible bool) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventJump:
			audible = true
		case core.EventScored:
			m.logger.Debug("scored", "score", ev.Score, "at", ev.At)
			audible = true
		case core.EventTempo:
			m.logger.Debug("tempo changed", "bpm", ev.Tempo, "spawn_interval", ev.SpawnInterval, "at", ev.At)
		case core.EventGameOver:
			m.logger.Info("game over", "score", ev.Score, "best", ev.Best, "new_best", ev.NewBest)
			if ev.Err != nil {
				m.logger.Warn("could not save best score", "game", m.game.ID(), "error", ev.Err)
			}
			audible = true
		}
	}
	return audible
}

// bellCmd rings the terminal bell.
func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		//nolint:errcheck // Best-effort cue
		fmt.Fprint(w, "\a")
		return nil
	}
}

// saveScreenshot saves the current screen under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	path, err := m.writeScreenshot(dir, time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot renders the current state and writes it as plain text into dir.
func (m *Model) writeScreenshot(dir string, now time.Time) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		footerStyle.Render(m.help.View(m.keys)),
	)
}

// Run starts the Bubble Tea program and, when configured, a metronome that
// feeds it beats. It returns when the player quits or ctx is cancelled.
func Run(ctx context.Context, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	logger := model.logger

	if store != nil {
		if err := game.UseScoreKeeper(store.Keeper(game.ID())); err != nil {
			logger.Warn("could not load best score", "game", game.ID(), "error", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if opts.MetronomeBPM > 0 {
		metronome := rhythm.Metronome{BPM: opts.MetronomeBPM}
		logger.Info("metronome started", "bpm", metronome.BPM, "interval", metronome.Interval())
		go func() {
			err := metronome.Run(ctx, func(t time.Time) {
				p.Send(PulseMsg{At: t})
			})
			if err != nil {
				logger.Error("metronome stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
