package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// FloorAngle is the rotation a falling body settles at, facing straight down.
const FloorAngle = -90.0

// BodyParams holds the constants a Body integrates with.
type BodyParams struct {
	Width, Height float64
	Gravity       float64 // Negative
	FlapForce     float64 // Velocity set by a flap
	Ceiling       float64 // Top boundary of the playfield

	Rotation      bool    // Cosmetic rotation enabled
	MaxUpAngle    float64 // Degrees while rising
	RotationAccel float64 // Degrees/s^2 while falling
}

// BodyParamsFrom extracts body constants from a game config.
func BodyParamsFrom(cfg config.FlappyConfig) BodyParams {
	return BodyParams{
		Width:         cfg.Player.Width,
		Height:        cfg.Player.Height,
		Gravity:       cfg.Physics.Gravity,
		FlapForce:     cfg.Physics.FlapForce,
		Ceiling:       cfg.World.Height,
		Rotation:      cfg.Physics.Rotation,
		MaxUpAngle:    cfg.Physics.MaxUpAngle,
		RotationAccel: cfg.Physics.RotationAccel,
	}
}

// Body is the player-controlled entity. (X, Y) is its bottom-left corner.
type Body struct {
	X, Y        float64
	VelocityY   float64
	Rotation    float64 // Degrees, positive is nose up
	RotationVel float64

	params BodyParams
}

// NewBody places a resting body with its centre at (cx, cy).
func NewBody(cx, cy float64, p BodyParams) Body {
	return Body{
		X:      cx - p.Width/2,
		Y:      cy - p.Height/2,
		params: p,
	}
}

// ApplyFlapImpulse replaces the vertical velocity with the flap force.
// Repeated flaps do not accumulate.
func (b *Body) ApplyFlapImpulse() {
	b.VelocityY = b.params.FlapForce
}

// Integrate advances the body by dt seconds.
// Only position is clamped at the ceiling; velocity carries over.
func (b *Body) Integrate(dt float64) {
	b.VelocityY += b.params.Gravity * dt
	b.Y += b.VelocityY * dt

	if top := b.params.Ceiling - b.params.Height; b.Y > top {
		b.Y = top
	}

	if b.params.Rotation {
		b.rotate(dt)
	}
}

func (b *Body) rotate(dt float64) {
	switch {
	case b.VelocityY > 0:
		b.Rotation = b.params.MaxUpAngle
		b.RotationVel = 0
	case b.VelocityY < 0:
		if b.Rotation <= FloorAngle {
			b.Rotation = FloorAngle
			return
		}
		b.RotationVel += b.params.RotationAccel * dt
		b.Rotation += b.RotationVel * dt
		if b.Rotation < FloorAngle {
			b.Rotation = FloorAngle
		}
	}
}

// Bounds returns the body's bounding box.
func (b Body) Bounds() core.Box {
	return core.NewBox(b.X, b.Y, b.params.Width, b.params.Height)
}

// CenterX returns the horizontal centre of the body.
func (b Body) CenterX() float64 {
	return b.X + b.params.Width/2
}
