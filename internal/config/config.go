// Package config provides YAML-based game configuration loading and
// difficulty presets for beatflap.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tuning for the game. Units are logical
// playfield units and per-frame quantities at the configured tick rate.
type FlappyConfig struct {
	Playfield Playfield `yaml:"playfield"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Rhythm    Rhythm    `yaml:"rhythm"`
}

// Playfield is the logical area the simulation runs in.
// The platform scales it to the terminal.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines per-frame motion constants.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every frame
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a jump (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle movement per frame
}

// Player defines the actor's hitbox and tilt response.
type Player struct {
	X         float64 `yaml:"x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	TiltScale float64 `yaml:"tilt_scale"` // Degrees per unit of velocity
	MaxTilt   float64 `yaml:"max_tilt"`   // Degrees, symmetric
	JumpTilt  float64 `yaml:"jump_tilt"`  // Degrees set by a jump
}

// Obstacles defines the gated barriers.
type Obstacles struct {
	Width     float64 `yaml:"width"`
	GapHeight float64 `yaml:"gap_height"`
	MinMargin float64 `yaml:"min_margin"` // Gap band keeps this far from top and bottom
}

// Rhythm defines tempo estimation and where pulses come from.
type Rhythm struct {
	DefaultBPM       int         `yaml:"default_bpm"`
	MinBPM           int         `yaml:"min_bpm"`
	MaxBPM           int         `yaml:"max_bpm"`
	BeatsPerObstacle float64     `yaml:"beats_per_obstacle"`
	Source           PulseSource `yaml:"source"`
}

// PulseSource selects which event streams feed the rhythm tracker.
type PulseSource string

const (
	// SourceExternal takes pulses only from an independent detector.
	SourceExternal PulseSource = "external"
	// SourcePassage pulses whenever an obstacle is scored.
	SourcePassage PulseSource = "passage"
	// SourceBoth accepts both streams.
	SourceBoth PulseSource = "both"
)

// AcceptsExternal reports whether detector pulses reach the tracker.
func (s PulseSource) AcceptsExternal() bool {
	return s == SourceExternal || s == SourceBoth || s == ""
}

// AcceptsPassage reports whether scored obstacles pulse the tracker.
func (s PulseSource) AcceptsPassage() bool {
	return s == SourcePassage || s == SourceBoth
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration can produce a legal game.
// In particular the gap band must fit between the margins.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must have positive size", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player must have positive size", ErrInvalidConfig)
	case c.Player.Height > c.Playfield.Height:
		return fmt.Errorf("%w: player taller than playfield", ErrInvalidConfig)
	case c.Obstacles.Width <= 0 || c.Obstacles.GapHeight <= 0:
		return fmt.Errorf("%w: obstacles must have positive width and gap", ErrInvalidConfig)
	case c.Obstacles.MinMargin < 0:
		return fmt.Errorf("%w: negative obstacle margin", ErrInvalidConfig)
	case 2*c.Obstacles.MinMargin+c.Obstacles.GapHeight > c.Playfield.Height:
		return fmt.Errorf("%w: gap %.0f with margin %.0f does not fit height %.0f",
			ErrInvalidConfig, c.Obstacles.GapHeight, c.Obstacles.MinMargin, c.Playfield.Height)
	case c.Physics.ScrollSpeed <= 0:
		return fmt.Errorf("%w: scroll speed must be positive", ErrInvalidConfig)
	case c.Rhythm.MinBPM <= 0 || c.Rhythm.MaxBPM < c.Rhythm.MinBPM:
		return fmt.Errorf("%w: bpm range [%d, %d]", ErrInvalidConfig, c.Rhythm.MinBPM, c.Rhythm.MaxBPM)
	case c.Rhythm.BeatsPerObstacle <= 0:
		return fmt.Errorf("%w: beats per obstacle must be positive", ErrInvalidConfig)
	}

	switch c.Rhythm.Source {
	case "", SourceExternal, SourcePassage, SourceBoth:
	default:
		return fmt.Errorf("%w: unknown rhythm source %q", ErrInvalidConfig, c.Rhythm.Source)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyFlappyPreset rescales the gap and obstacle density for a preset.
// Presets are static; spacing still follows the rhythm.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.GapHeight *= 1.2
		cfg.Rhythm.BeatsPerObstacle *= 1.5
	case DifficultyHard:
		cfg.Obstacles.GapHeight *= 0.8
		cfg.Rhythm.BeatsPerObstacle *= 0.75
	}

	// Easy must still fit the playfield.
	if limit := cfg.Playfield.Height - 2*cfg.Obstacles.MinMargin; cfg.Obstacles.GapHeight > limit {
		cfg.Obstacles.GapHeight = limit
	}
}
