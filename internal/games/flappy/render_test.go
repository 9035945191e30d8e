package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/beatflap/internal/core"
)

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Beatflap") {
		t.Error("start screen should show the title")
	}
	if !strings.Contains(out, "Space to start") {
		t.Error("start screen should explain how to begin")
	}
	if !strings.Contains(screen.Row(0), "120 bpm") {
		t.Errorf("HUD should show the tempo, row 0 = %q", screen.Row(0))
	}
}

func TestRenderGroundAndActor(t *testing.T) {
	g := newTestGame(nil)
	g.Step(0, input(core.ActionStart))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if ground := screen.Row(23); ground != strings.Repeat(string(GroundChar), 80) {
		t.Errorf("bottom row should be ground, got %q", ground)
	}

	// Actor at (100, 200.5) of 320x400 lands on columns 25-34, rows 11-13
	if r := screen.Get(25, 11); r != BodyChar {
		t.Errorf("expected actor body at (25, 11), got %q", r)
	}
	if r := screen.Get(34, 12); r != NoseLevel {
		t.Errorf("expected level nose at (34, 12), got %q", r)
	}
	if strings.Contains(screen.String(), "Space to start") {
		t.Error("running game should not show the start box")
	}
}

func TestRenderNoseFollowsTilt(t *testing.T) {
	g := newTestGame(nil)
	g.Step(0, input(core.ActionStart))
	g.Jump()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.ContainsRune(screen.String(), NoseUp) {
		t.Error("a fresh jump should draw the nose pointing up")
	}
}

func TestRenderObstacle(t *testing.T) {
	g := newTestGame(nil)
	g.Start()
	g.round.field.obstacles = append(g.round.field.obstacles, Obstacle{X: 200, Width: 50, GapTop: 100, GapHeight: 150})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Columns 50-62; gap spans rows 6-14 on a 23-row field
	if r := screen.Get(55, 2); r != PipeChar {
		t.Errorf("expected pipe above the gap, got %q", r)
	}
	if r := screen.Get(55, 10); r != ' ' {
		t.Errorf("expected open gap, got %q", r)
	}
	if r := screen.Get(55, 20); r != PipeChar {
		t.Errorf("expected pipe below the gap, got %q", r)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(nil)
	_ = g.UseScoreKeeper(&memKeeper{best: 1})
	g.Start()
	g.round.score = 4
	g.end()

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER  ·  NEW BEST") {
		t.Error("game over box should announce the new best")
	}
	if !strings.Contains(out, "Score: 4  Best: 4") {
		t.Error("game over box should show score and best")
	}
}

func TestRenderSmallScreens(t *testing.T) {
	g := newTestGame(nil)
	g.Step(0, input(core.ActionStart))

	for _, size := range [][2]int{{0, 0}, {1, 1}, {1, 2}, {3, 2}, {10, 3}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen) // Must not panic
	}
}
