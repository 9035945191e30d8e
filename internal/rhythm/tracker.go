// Package rhythm turns a sparse stream of detected beats into a tempo
// estimate and the obstacle spawn interval derived from it.
package rhythm

import (
	"math"
	"time"
)

// Reference tuning.
const (
	DefaultBPM              = 120
	MinBPM                  = 60
	MaxBPM                  = 300
	DefaultBeatsPerObstacle = 2
)

// Settings configures a Tracker.
type Settings struct {
	DefaultBPM       int
	MinBPM           int
	MaxBPM           int
	BeatsPerObstacle float64
}

// DefaultSettings returns the reference tuning.
func DefaultSettings() Settings {
	return Settings{
		DefaultBPM:       DefaultBPM,
		MinBPM:           MinBPM,
		MaxBPM:           MaxBPM,
		BeatsPerObstacle: DefaultBeatsPerObstacle,
	}
}

// Tracker estimates tempo from the most recent inter-pulse interval.
// There is no smoothing window, so the estimate follows every pulse.
type Tracker struct {
	settings      Settings
	tempo         int
	spawnInterval time.Duration
	lastPulse     time.Duration
	hasPulse      bool
}

// NewTracker creates a tracker at the default tempo.
// Zero fields in s fall back to the reference tuning.
func NewTracker(s Settings) *Tracker {
	def := DefaultSettings()
	if s.DefaultBPM <= 0 {
		s.DefaultBPM = def.DefaultBPM
	}
	if s.MinBPM <= 0 {
		s.MinBPM = def.MinBPM
	}
	if s.MaxBPM < s.MinBPM {
		s.MaxBPM = max(def.MaxBPM, s.MinBPM)
	}
	if s.BeatsPerObstacle <= 0 {
		s.BeatsPerObstacle = def.BeatsPerObstacle
	}
	t := &Tracker{settings: s}
	t.Reset()
	return t
}

// Reset restores the default tempo and forgets the last pulse.
func (t *Tracker) Reset() {
	t.hasPulse = false
	t.lastPulse = 0
	t.setTempo(t.clampBPM(float64(t.settings.DefaultBPM)))
}

// OnPulse records a beat at now. When a previous beat exists and lies
// strictly before now, the tempo becomes round(1min / gap) clamped to the
// configured range. The last-pulse timestamp is always overwritten.
// It reports whether tempo was recomputed.
func (t *Tracker) OnPulse(now time.Duration) bool {
	updated := false
	if t.hasPulse {
		if gap := now - t.lastPulse; gap > 0 {
			bpm := math.Round(float64(time.Minute) / float64(gap))
			t.setTempo(t.clampBPM(bpm))
			updated = true
		}
	}
	t.lastPulse = now
	t.hasPulse = true
	return updated
}

// Tempo returns the current estimate in beats per minute.
func (t *Tracker) Tempo() int {
	return t.tempo
}

// SpawnInterval returns the minimum time between obstacle spawns.
func (t *Tracker) SpawnInterval() time.Duration {
	return t.spawnInterval
}

// LastPulse returns the timestamp of the most recent pulse, if any.
func (t *Tracker) LastPulse() (time.Duration, bool) {
	return t.lastPulse, t.hasPulse
}

// setTempo updates tempo and spawn interval together so readers never see
// one without the other.
func (t *Tracker) setTempo(bpm int) {
	t.tempo = bpm
	t.spawnInterval = SpawnInterval(bpm, t.settings.BeatsPerObstacle)
}

// clampBPM restricts a raw estimate to the configured range.
func (t *Tracker) clampBPM(bpm float64) int {
	lo, hi := float64(t.settings.MinBPM), float64(t.settings.MaxBPM)
	switch {
	case math.IsNaN(bpm) || bpm < lo:
		return t.settings.MinBPM
	case bpm > hi:
		return t.settings.MaxBPM
	default:
		return int(bpm)
	}
}

// SpawnInterval returns (1min / bpm) * beatsPerObstacle.
func SpawnInterval(bpm int, beatsPerObstacle float64) time.Duration {
	if bpm <= 0 {
		return 0
	}
	beat := time.Minute / time.Duration(bpm)
	return time.Duration(float64(beat) * beatsPerObstacle)
}
