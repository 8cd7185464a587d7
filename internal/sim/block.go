package sim

import (
	"math"

	"github.com/vovakirdan/slingshot/internal/core"
)

const (
	blockMassDivisor   = 1200.0
	blockFloorBounce   = -0.15
	blockFloorFriction = 0.84
)

// Block is a rectangular destructible obstacle. Angle is stored for
// renderers only; physics treats every block as axis-aligned.
type Block struct {
	X, Y     float64 // Top-left corner
	W, H     float64
	VX, VY   float64
	Material Material
	Angle    float64
	Mass     float64
	Health   float64
	Alive    bool
}

// NewBlock creates a live block with mass and health from its material.
func NewBlock(x, y, w, h float64, m Material, angle float64, profile MaterialProfile) *Block {
	return &Block{
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		Material: m,
		Angle:    angle,
		Mass:     w * h * profile.Density / blockMassDivisor,
		Health:   profile.MaxHealth,
		Alive:    true,
	}
}

// Rect returns the block's bounding rectangle.
func (b *Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Center returns the geometric center of the block.
func (b *Block) Center() (float64, float64) {
	c := b.Rect().Center()
	return c.X, c.Y
}

// Integrate advances the block by dt under gravity with floor contact.
func (b *Block) Integrate(dt, gravity, floorY float64) {
	if !b.Alive {
		return
	}
	b.VY += gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Y+b.H > floorY {
		b.Y = floorY - b.H
		b.VY *= blockFloorBounce
		b.VX *= blockFloorFriction
	}

	if math.Abs(b.VX) < restSnapSpeed {
		b.VX = 0
	}
}

// Damage subtracts health and destroys the block at zero. No-op when destroyed.
func (b *Block) Damage(amount float64) {
	if !b.Alive {
		return
	}
	b.Health -= amount
	if b.Health <= 0 {
		b.Alive = false
	}
}
