package flappy

import (
	"time"

	"github.com/vovakirdan/beatflap/internal/core"
)

// ActorView is a read-only copy of the actor.
type ActorView struct {
	X, Y     float64
	Width    float64
	Height   float64
	Velocity float64
	Tilt     float64
}

// ObstacleView is a read-only copy of an obstacle.
type ObstacleView struct {
	X         float64
	Width     float64
	GapTop    float64
	GapHeight float64
	Passed    bool
}

// Snapshot is everything the presentation layer may read in a frame.
type Snapshot struct {
	Phase         core.Phase
	Tick          int
	Now           time.Duration
	FieldW        float64
	FieldH        float64
	Actor         ActorView
	Obstacles     []ObstacleView
	Score         int
	Best          int
	NewBest       bool
	Tempo         int
	SpawnInterval time.Duration
}

// Snapshot copies the current session state.
func (g *Game) Snapshot() Snapshot {
	r := &g.round
	a := r.actor

	obstacles := make([]ObstacleView, 0, r.field.Len())
	for _, o := range r.field.Obstacles() {
		obstacles = append(obstacles, ObstacleView{
			X:         o.X,
			Width:     o.Width,
			GapTop:    o.GapTop,
			GapHeight: o.GapHeight,
			Passed:    o.Passed,
		})
	}

	return Snapshot{
		Phase:  r.phase,
		Tick:   r.tickCount,
		Now:    r.now,
		FieldW: g.cfg.Playfield.Width,
		FieldH: g.cfg.Playfield.Height,
		Actor: ActorView{
			X:        a.X,
			Y:        a.Y,
			Width:    a.Width,
			Height:   a.Height,
			Velocity: a.Velocity,
			Tilt:     a.Tilt,
		},
		Obstacles:     obstacles,
		Score:         r.score,
		Best:          g.best,
		NewBest:       r.newBest,
		Tempo:         r.tracker.Tempo(),
		SpawnInterval: r.tracker.SpawnInterval(),
	}
}
