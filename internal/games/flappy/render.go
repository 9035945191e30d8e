package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/beatflap/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	NoseLevel     = '▶'
	NoseUp        = '▲'
	NoseDown      = '▼'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// tiltThreshold is the tilt in degrees past which the nose glyph changes.
const tiltThreshold = 10

// viewport maps playfield units onto the screen rows above the ground line.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - 1
	return viewport{
		sx:   float64(dst.Width()) / fieldW,
		sy:   float64(rows) / fieldH,
		rows: rows,
	}
}

// span converts [lo, hi) in playfield units to a cell range of at least one cell.
func span(lo, hi, scale float64) (int, int) {
	from := int(math.Floor(lo * scale))
	to := int(math.Ceil(hi * scale))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Height() < 2 || dst.Width() < 1 {
		return
	}

	snap := g.Snapshot()
	vp := newViewport(dst, snap.FieldW, snap.FieldH)

	dst.DrawHLine(0, vp.rows, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, o)
	}
	drawActor(dst, vp, snap.Actor)

	hud := fmt.Sprintf(" Score: %d  Best: %d  ♪ %d bpm · %v ", snap.Score, snap.Best, snap.Tempo, snap.SpawnInterval)
	dst.DrawTextColor(1, 0, hud, core.ColorWhite)

	switch snap.Phase {
	case core.PhaseNotStarted:
		drawCenteredMessage(dst, g.Title(), "Space to start  ·  C claps the beat", core.ColorCyan)
	case core.PhaseOver:
		title := "GAME OVER"
		if snap.NewBest {
			title = "GAME OVER  ·  NEW BEST"
		}
		drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", snap.Score, snap.Best),
			core.ColorBrightRed)
	}
}

// drawObstacle renders the solid parts above and below the gap band.
func drawObstacle(dst *core.Screen, vp viewport, o ObstacleView) {
	x0, x1 := span(o.X, o.X+o.Width, vp.sx)
	gapFrom := int(math.Ceil(o.GapTop * vp.sy))
	gapTo := int(math.Floor((o.GapTop + o.GapHeight) * vp.sy))

	for x := x0; x < x1; x++ {
		for y := 0; y < gapFrom; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorGreen)
		}
		if gapFrom > 0 {
			dst.SetColor(x, gapFrom-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := gapTo; y < vp.rows; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorGreen)
		}
		if gapTo < vp.rows {
			dst.SetColor(x, gapTo, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawActor renders the body with a nose glyph that follows the tilt.
func drawActor(dst *core.Screen, vp viewport, a ActorView) {
	x0, x1 := span(a.X, a.X+a.Width, vp.sx)
	y0, y1 := span(a.Y, a.Y+a.Height, vp.sy)
	y1 = min(y1, vp.rows)
	y0 = min(y0, y1-1)

	nose := NoseLevel
	switch {
	case a.Tilt < -tiltThreshold:
		nose = NoseUp
	case a.Tilt > tiltThreshold:
		nose = NoseDown
	}

	noseY := y0 + (y1-y0-1)/2
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r := BodyChar
			if x == x1-1 && y == noseY {
				r = nose
			}
			dst.SetColor(x, y, r, core.ColorYellow)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := min(max(titleLen, subtitleLen)+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColor(box.X+(boxW-titleLen)/2, box.Y+1, title, c)
	dst.DrawTextColor(box.X+(boxW-subtitleLen)/2, box.Y+3, subtitle, core.ColorWhite)
}
