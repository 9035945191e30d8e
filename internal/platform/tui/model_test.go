package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/beatflap/internal/config"
	"github.com/vovakirdan/beatflap/internal/core"
	"github.com/vovakirdan/beatflap/internal/games/flappy"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0

	m := NewModel(flappy.NewWithConfig(cfg), core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}, Options{})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelStartAndFlap(t *testing.T) {
	m := newTestModel(t)

	m = tick(t, m)
	if m.gameState.Phase != core.PhaseNotStarted {
		t.Fatalf("phase = %v before any key, expected NotStarted", m.gameState.Phase)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	if m.gameState.Phase != core.PhaseRunning {
		t.Fatalf("phase = %v after space, expected Running", m.gameState.Phase)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.inputFrame.Has(core.ActionJump) {
		t.Error("space while running should queue a jump")
	}
	m = tick(t, m)
	if m.inputFrame.Has(core.ActionJump) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelPulsesReachGame(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)

	base := time.Now()
	m = update(t, m, PulseMsg{At: base})
	m = update(t, m, PulseMsg{At: base.Add(400 * time.Millisecond)})
	m = tick(t, m)

	if m.gameState.Tempo != 150 {
		t.Errorf("tempo = %d after pulses 400ms apart, expected 150", m.gameState.Tempo)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit should be empty, got %d bytes", len(v))
	}
}

func TestModelLayoutReservesFooter(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}

	m = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if m.screen.Height() >= 29 {
		t.Errorf("full help should take more rows, screen height = %d", m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "restart") {
		t.Error("view should include the help footer")
	}
}

func TestModelBell(t *testing.T) {
	m := newTestModel(t)
	var out bytes.Buffer
	m.bell = true
	m.bellOut = &out

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	m = update(t, m, runeKey('c'))

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should return a command")
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch of tick and bell, got %T", msg)
	}
	for _, c := range batch {
		if c != nil {
			c()
		}
	}
	if out.String() != "\a" {
		t.Errorf("bell output = %q, expected one bell", out.String())
	}
}

func TestModelWriteScreenshot(t *testing.T) {
	m := newTestModel(t)
	dir := filepath.Join(t.TempDir(), "shots")

	path, err := m.writeScreenshot(dir, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("writeScreenshot() failed: %v", err)
	}
	if filepath.Base(path) != "beatflap_20240301_123000.txt" {
		t.Errorf("unexpected screenshot name %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading screenshot: %v", err)
	}
	if !strings.Contains(string(data), "Space to start") {
		t.Error("screenshot should contain the rendered start screen")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "xyz", core.ColorYellow)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q", want)
		}
	}
}
