package flappy

import (
	"github.com/vovakirdan/beatflap/internal/config"
	"github.com/vovakirdan/beatflap/internal/core"
)

// Actor is the falling, flapping body the player controls.
// X never changes; Y grows downward.
type Actor struct {
	X, Y     float64
	Velocity float64
	Width    float64
	Height   float64
	Tilt     float64 // Degrees, positive = nose down

	gravity     float64
	jumpImpulse float64
	tiltScale   float64
	maxTilt     float64
	jumpTilt    float64
	maxY        float64 // Lowest legal Y (floor contact)
}

// NewActor places an actor at the vertical center of the playfield, at rest.
func NewActor(cfg config.FlappyConfig) Actor {
	return Actor{
		X:           cfg.Player.X,
		Y:           cfg.Playfield.Height / 2,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		gravity:     cfg.Physics.Gravity,
		jumpImpulse: cfg.Physics.JumpImpulse,
		tiltScale:   cfg.Player.TiltScale,
		maxTilt:     cfg.Player.MaxTilt,
		jumpTilt:    cfg.Player.JumpTilt,
		maxY:        cfg.Playfield.Height - cfg.Player.Height,
	}
}

// ApplyGravity adds one frame of gravity to the velocity.
func (a *Actor) ApplyGravity() {
	a.Velocity += a.gravity
}

// Integrate moves the actor by its velocity and clamps it to the playfield.
// Hitting the ceiling stops upward motion; the return value reports floor contact.
func (a *Actor) Integrate() (touchedFloor bool) {
	a.Y += a.Velocity

	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}
	if a.Y >= a.maxY {
		a.Y = a.maxY
		touchedFloor = true
	}
	return touchedFloor
}

// UpdateTilt derives the tilt from the current velocity.
func (a *Actor) UpdateTilt() {
	a.Tilt = core.ClampF(a.Velocity*a.tiltScale, -a.maxTilt, a.maxTilt)
}

// Jump replaces the velocity with the jump impulse and pitches the nose up.
func (a *Actor) Jump() {
	a.Velocity = a.jumpImpulse
	a.Tilt = a.jumpTilt
}

// Box returns the actor's hitbox.
func (a Actor) Box() core.Box {
	return core.Box{X: a.X, Y: a.Y, W: a.Width, H: a.Height}
}
