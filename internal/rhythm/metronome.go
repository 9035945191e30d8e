package rhythm

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidBPM is returned when a metronome is started without a positive tempo.
var ErrInvalidBPM = errors.New("rhythm: metronome bpm must be positive")

// Metronome is a PulseSource that beats at a fixed tempo.
// It stands in for a microphone clap detector.
type Metronome struct {
	BPM int
}

// Interval returns the time between beats.
func (m Metronome) Interval() time.Duration {
	if m.BPM <= 0 {
		return 0
	}
	return time.Minute / time.Duration(m.BPM)
}

// Run calls emit with the wall-clock time of every beat until ctx is done.
// emit runs on the caller's goroutine and must not block for long.
func (m Metronome) Run(ctx context.Context, emit func(time.Time)) error {
	interval := m.Interval()
	if interval <= 0 {
		return ErrInvalidBPM
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			emit(t)
		}
	}
}
