package rhythm

import (
	"testing"
	"time"
)

func TestTrackerDefaults(t *testing.T) {
	tr := NewTracker(DefaultSettings())

	if tr.Tempo() != 120 {
		t.Errorf("default tempo = %d, expected 120", tr.Tempo())
	}
	if tr.SpawnInterval() != time.Second {
		t.Errorf("default spawn interval = %v, expected 1s", tr.SpawnInterval())
	}
	if _, ok := tr.LastPulse(); ok {
		t.Error("fresh tracker should have no last pulse")
	}
}

func TestTrackerFirstPulseOnlyRecordsTimestamp(t *testing.T) {
	tr := NewTracker(DefaultSettings())

	if tr.OnPulse(250 * time.Millisecond) {
		t.Error("first pulse should not update tempo")
	}
	if tr.Tempo() != 120 {
		t.Errorf("tempo after first pulse = %d, expected 120", tr.Tempo())
	}
	last, ok := tr.LastPulse()
	if !ok || last != 250*time.Millisecond {
		t.Errorf("LastPulse() = %v, %v; expected 250ms, true", last, ok)
	}
}

func TestTrackerTempoFromInterval(t *testing.T) {
	tests := []struct {
		name     string
		gap      time.Duration
		tempo    int
		interval time.Duration
	}{
		{"500ms is 120 bpm", 500 * time.Millisecond, 120, time.Second},
		{"400ms is 150 bpm", 400 * time.Millisecond, 150, 800 * time.Millisecond},
		{"rounds to nearest", 333 * time.Millisecond, 180, 2 * time.Minute / 180},
		{"clamps fast pulses", time.Millisecond, 300, 400 * time.Millisecond},
		{"clamps slow pulses", 10 * time.Second, 60, 2 * time.Second},
		{"clamps near zero", time.Nanosecond, 300, 400 * time.Millisecond},
		{"clamps very large", 1000 * time.Hour, 60, 2 * time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker(DefaultSettings())
			tr.OnPulse(0)
			if !tr.OnPulse(tc.gap) {
				t.Fatal("second pulse should update tempo")
			}
			if tr.Tempo() != tc.tempo {
				t.Errorf("tempo = %d, expected %d", tr.Tempo(), tc.tempo)
			}
			if tr.SpawnInterval() != tc.interval {
				t.Errorf("spawn interval = %v, expected %v", tr.SpawnInterval(), tc.interval)
			}
		})
	}
}

func TestTrackerTempoAlwaysInRange(t *testing.T) {
	tr := NewTracker(DefaultSettings())
	now := time.Duration(0)
	tr.OnPulse(now)

	for gap := time.Nanosecond; gap < time.Hour; gap = gap*3 + 7 {
		now += gap
		tr.OnPulse(now)
		if tr.Tempo() < MinBPM || tr.Tempo() > MaxBPM {
			t.Fatalf("gap %v produced tempo %d outside [%d, %d]", gap, tr.Tempo(), MinBPM, MaxBPM)
		}
		if want := SpawnInterval(tr.Tempo(), DefaultBeatsPerObstacle); tr.SpawnInterval() != want {
			t.Fatalf("spawn interval %v out of sync with tempo %d (want %v)", tr.SpawnInterval(), tr.Tempo(), want)
		}
	}
}

func TestTrackerIgnoresNonIncreasingPulse(t *testing.T) {
	tr := NewTracker(DefaultSettings())
	tr.OnPulse(time.Second)
	tr.OnPulse(time.Second + 400*time.Millisecond) // 150 bpm

	if tr.OnPulse(time.Second + 400*time.Millisecond) {
		t.Error("zero gap should not update tempo")
	}
	if tr.OnPulse(time.Second) {
		t.Error("negative gap should not update tempo")
	}
	if tr.Tempo() != 150 {
		t.Errorf("tempo = %d, expected 150 to survive bad pulses", tr.Tempo())
	}
	if last, _ := tr.LastPulse(); last != time.Second {
		t.Errorf("last pulse = %v, expected it to be overwritten with 1s", last)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(DefaultSettings())
	tr.OnPulse(0)
	tr.OnPulse(250 * time.Millisecond)

	tr.Reset()

	fresh := NewTracker(DefaultSettings())
	if *tr != *fresh {
		t.Errorf("reset tracker = %+v, expected %+v", *tr, *fresh)
	}
}

func TestTrackerCustomSettings(t *testing.T) {
	tr := NewTracker(Settings{DefaultBPM: 90, MinBPM: 80, MaxBPM: 100, BeatsPerObstacle: 1})

	if tr.Tempo() != 90 {
		t.Errorf("tempo = %d, expected 90", tr.Tempo())
	}
	tr.OnPulse(0)
	tr.OnPulse(500 * time.Millisecond)
	if tr.Tempo() != 100 {
		t.Errorf("tempo = %d, expected clamp to 100", tr.Tempo())
	}
	if tr.SpawnInterval() != 600*time.Millisecond {
		t.Errorf("spawn interval = %v, expected 600ms", tr.SpawnInterval())
	}
}

func TestSpawnInterval(t *testing.T) {
	if got := SpawnInterval(120, 2); got != time.Second {
		t.Errorf("SpawnInterval(120, 2) = %v, expected 1s", got)
	}
	if got := SpawnInterval(60, 1.5); got != 1500*time.Millisecond {
		t.Errorf("SpawnInterval(60, 1.5) = %v, expected 1.5s", got)
	}
	if got := SpawnInterval(0, 2); got != 0 {
		t.Errorf("SpawnInterval(0, 2) = %v, expected 0", got)
	}
}
