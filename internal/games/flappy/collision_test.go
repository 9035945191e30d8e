package flappy

import (
	"testing"

	"github.com/vovakirdan/beatflap/internal/core"
)

func actorAt(y float64) core.Box {
	return core.Box{X: 100, Y: y, W: 40, H: 30}
}

func TestCollidesAfterScroll(t *testing.T) {
	f := newTestField(1, Obstacle{X: 320, Width: 50, GapTop: 100, GapHeight: 150})
	for i := 0; i < 110; i++ {
		f.Step(2)
	}
	if x := f.Obstacles()[0].X; x != 100 {
		t.Fatalf("obstacle X = %v after 110 steps, expected 100", x)
	}

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"top of gap", 100, false},
		{"middle of gap", 160, false},
		{"bottom of gap", 220, false},
		{"above gap", 50, true},
		{"pokes below gap", 230, true},
		{"straddles top edge", 90, true},
		{"far below", 300, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(actorAt(tc.y), f.Obstacles()); got != tc.expected {
				t.Errorf("Collides(y=%v) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestCollidesNeedsHorizontalOverlap(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{"ahead of actor", 150, false},
		{"touching actor front", 140, false},
		{"overlapping front", 139, true},
		{"touching actor back", 50, false},
		{"overlapping back", 51, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Actor is entirely outside the gap, so only overlap decides
			obs := []Obstacle{{X: tc.x, Width: 50, GapTop: 200, GapHeight: 150}}
			if got := Collides(actorAt(0), obs); got != tc.expected {
				t.Errorf("Collides(x=%v) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestCollidesAnyObstacle(t *testing.T) {
	obs := []Obstacle{
		{X: 300, Width: 50, GapTop: 0, GapHeight: 400},
		{X: 110, Width: 50, GapTop: 0, GapHeight: 100},
	}

	if !Collides(actorAt(200), obs) {
		t.Error("expected collision with the second obstacle")
	}
	if Collides(actorAt(200), nil) {
		t.Error("empty field should never collide")
	}
}
