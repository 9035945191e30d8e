package core

import "time"

// EventKind identifies a cue emitted by the simulation.
type EventKind int

const (
	EventJump EventKind = iota + 1
	EventScored
	EventTempo
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventScored:
		return "scored"
	case EventTempo:
		return "tempo"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a cue for collaborators outside the simulation (sound, logging).
// Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	At    time.Duration
	Score int

	// EventTempo
	Tempo         int
	SpawnInterval time.Duration

	// EventGameOver
	Best    int
	NewBest bool
	Err     error // Best-score persistence failure
}
