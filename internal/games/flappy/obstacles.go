package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/beatflap/internal/config"
)

// Obstacle is a vertical barrier with a passable gap band.
// Only X and Passed change after creation.
type Obstacle struct {
	X         float64 // Left edge
	Width     float64
	GapTop    float64
	GapHeight float64
	Passed    bool // Set once the actor has cleared the right edge
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the y-coordinate of the bottom of the gap band.
func (o Obstacle) GapBottom() float64 {
	return o.GapTop + o.GapHeight
}

// ObstacleField owns the live obstacles in spawn order, which is also
// left-to-right screen order.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	fieldW    float64
	fieldH    float64
	width     float64
	gapHeight float64
	margin    float64
}

// NewObstacleField creates an empty field that draws gap positions from rng.
func NewObstacleField(cfg config.FlappyConfig, rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		fieldW:    cfg.Playfield.Width,
		fieldH:    cfg.Playfield.Height,
		width:     cfg.Obstacles.Width,
		gapHeight: cfg.Obstacles.GapHeight,
		margin:    cfg.Obstacles.MinMargin,
	}
}

// Step moves every obstacle left by speed and drops those whose right edge
// has left the playfield.
func (f *ObstacleField) Step(speed float64) {
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// CheckPassage marks obstacles whose right edge is behind actorX as passed.
// It returns how many were newly passed this call.
func (f *ObstacleField) CheckPassage(actorX float64) int {
	passed := 0
	for i := range f.obstacles {
		if !f.obstacles[i].Passed && f.obstacles[i].Right() < actorX {
			f.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// ShouldSpawn reports whether more than interval has elapsed since lastSpawn.
func ShouldSpawn(now, lastSpawn, interval time.Duration) bool {
	return now-lastSpawn > interval
}

// Spawn adds an obstacle at the right edge with a gap band drawn uniformly
// from [margin, fieldH-margin-gapHeight].
func (f *ObstacleField) Spawn() Obstacle {
	minTop := f.margin
	maxTop := f.fieldH - f.margin - f.gapHeight
	if maxTop < minTop {
		maxTop = minTop // Edge case for configs that skipped validation
	}

	o := Obstacle{
		X:         f.fieldW,
		Width:     f.width,
		GapTop:    minTop + f.rng.Float64()*(maxTop-minTop),
		GapHeight: f.gapHeight,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
