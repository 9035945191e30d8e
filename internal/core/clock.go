package core

import "time"

// Pulse is a detected rhythmic beat. Jump is set when the detection was
// strong enough to also count as a flap.
type Pulse struct {
	At   time.Duration
	Jump bool
}

// Clock converts wall-clock readings into monotonic offsets from an origin.
// Timestamps handed to the simulation are always offsets from the same Clock.
type Clock struct {
	origin time.Time
}

// NewClock creates a clock whose zero is the given instant.
func NewClock(origin time.Time) Clock {
	return Clock{origin: origin}
}

// At returns t as an offset from the clock origin.
// Times carrying a monotonic reading are compared monotonically.
func (c Clock) At(t time.Time) time.Duration {
	return t.Sub(c.origin)
}

// Now returns the current offset from the clock origin.
func (c Clock) Now() time.Duration {
	return time.Since(c.origin)
}
