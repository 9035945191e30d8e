package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the reference tuning.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{
			Width:  320,
			Height: 400,
		},
		Physics: Physics{
			Gravity:     0.5,
			JumpImpulse: -8,
			ScrollSpeed: 2,
		},
		Player: Player{
			X:         100,
			Width:     40,
			Height:    30,
			TiltScale: 3,
			MaxTilt:   30,
			JumpTilt:  -25,
		},
		Obstacles: Obstacles{
			Width:     50,
			GapHeight: 150,
			MinMargin: 50,
		},
		Rhythm: Rhythm{
			DefaultBPM:       120,
			MinBPM:           60,
			MaxBPM:           300,
			BeatsPerObstacle: 2,
			Source:           SourceExternal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFlappyYAML
}
