package flappy

import "github.com/vovakirdan/beatflap/internal/core"

// Collides reports whether actor hits any obstacle: it overlaps an obstacle
// horizontally while its vertical extent is not entirely inside the gap band.
// The check is discrete per frame; a fast actor can tunnel through a thin
// obstacle between frames.
func Collides(actor core.Box, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if !actor.OverlapsX(core.Box{X: o.X, W: o.Width}) {
			continue
		}
		if !actor.WithinY(o.GapTop, o.GapBottom()) {
			return true
		}
	}
	return false
}
