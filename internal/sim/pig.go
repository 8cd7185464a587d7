package sim

import (
	"math"

	"github.com/vovakirdan/slingshot/internal/core"
)

const (
	pigHealthFactor  = 7.0
	pigMassFactor    = 0.65
	pigFloorBounce   = -0.2
	pigFloorFriction = 0.8

	// DefaultPigRadius is used for placements that omit a radius.
	DefaultPigRadius = 20.0

	// Horizontal speeds below this snap to zero to stop micro-jitter.
	restSnapSpeed = 1.0
)

// Pig is a circular destructible target. Killing every pig wins the round.
type Pig struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Health float64
	Mass   float64
	Alive  bool
}

// NewPig creates a live pig centered at (x, y).
func NewPig(x, y, radius float64) *Pig {
	if radius <= 0 {
		radius = DefaultPigRadius
	}
	return &Pig{
		X:      x,
		Y:      y,
		Radius: radius,
		Health: radius * pigHealthFactor,
		Mass:   radius * pigMassFactor,
		Alive:  true,
	}
}

// Bounds returns the pig's axis-aligned bounding square.
func (p *Pig) Bounds() core.Rect {
	return core.NewRect(p.X-p.Radius, p.Y-p.Radius, p.Radius*2, p.Radius*2)
}

// Integrate advances the pig by dt under gravity with floor contact.
func (p *Pig) Integrate(dt, gravity, floorY float64) {
	if !p.Alive {
		return
	}
	p.VY += gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if p.Y+p.Radius > floorY {
		p.Y = floorY - p.Radius
		p.VY *= pigFloorBounce
		p.VX *= pigFloorFriction
	}

	if math.Abs(p.VX) < restSnapSpeed {
		p.VX = 0
	}
}

// Damage subtracts health and kills the pig at zero. No-op when dead.
func (p *Pig) Damage(amount float64) {
	if !p.Alive {
		return
	}
	p.Health -= amount
	if p.Health <= 0 {
		p.Alive = false
	}
}
