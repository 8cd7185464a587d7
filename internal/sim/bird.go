package sim

import "github.com/vovakirdan/slingshot/internal/core"

// Bird integration and ability constants.
const (
	birdFloorBounce   = -0.25
	birdFloorFriction = 0.87
	birdWallBounce    = -0.35
	birdMassFactor    = 0.5

	settleSpeedSq = 20.0 // Below this squared speed a bird counts as resting
	settleDwell   = 2.2  // Seconds of continuous rest before a bird settles

	yellowBoost = 220.0

	blackBlastRadius = 120.0
	blackBlastForce  = 170.0

	eggDrop        = 70.0
	eggBlastRadius = 95.0
	eggBlastForce  = 145.0
)

// AbilityHost is the narrow set of world mutations a bird ability may request.
type AbilityHost interface {
	// SplitFrom spawns child birds next to parent.
	SplitFrom(parent *Bird)
	// TriggerExplosion applies a radial explosion immediately.
	TriggerExplosion(x, y, radius, force float64)
}

// Bird is a launchable projectile with a one-shot ability.
type Bird struct {
	Type   BirdType
	X, Y   float64
	VX, VY float64
	Radius float64
	Power  float64
	Mass   float64
	Color  string

	Launched    bool
	Active      bool
	AbilityUsed bool
	RestTimer   float64
}

// NewBird creates a bird at rest at (x, y) using the profile for bt.
func NewBird(bt BirdType, x, y float64, profile BirdProfile) *Bird {
	return &Bird{
		Type:   bt,
		X:      x,
		Y:      y,
		Radius: profile.Radius,
		Power:  profile.Power,
		Mass:   profile.Radius * birdMassFactor,
		Color:  profile.Color,
		Active: true,
	}
}

// Launch gives the bird its initial velocity. Ignored once launched.
func (b *Bird) Launch(vx, vy float64) {
	if b.Launched {
		return
	}
	b.VX = vx
	b.VY = vy
	b.Launched = true
}

// Speed returns the magnitude of the bird's velocity.
func (b *Bird) Speed() float64 {
	return core.Length(b.VX, b.VY)
}

// Impact returns speed * mass * power, the bird's hitting strength.
func (b *Bird) Impact() float64 {
	return b.Speed() * b.Mass * b.Power
}

// Integrate advances the bird by dt under gravity with floor and wall
// contact, then updates the settle timer.
func (b *Bird) Integrate(dt, gravity, worldW, floorY float64) {
	if !b.Active || !b.Launched {
		return
	}

	b.VY += gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Y+b.Radius > floorY {
		b.Y = floorY - b.Radius
		b.VY *= birdFloorBounce
		b.VX *= birdFloorFriction
	}

	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX *= birdWallBounce
	}
	if b.X+b.Radius > worldW {
		b.X = worldW - b.Radius
		b.VX *= birdWallBounce
	}

	if b.VX*b.VX+b.VY*b.VY < settleSpeedSq {
		b.RestTimer += dt
		if b.RestTimer > settleDwell {
			b.Active = false
		}
	} else {
		b.RestTimer = 0
	}
}

// TriggerAbility fires the bird's ability once. The one-shot flag is consumed
// even for types without an ability.
func (b *Bird) TriggerAbility(host AbilityHost) {
	if b.AbilityUsed || !b.Launched || !b.Active {
		return
	}
	b.AbilityUsed = true

	switch b.Type {
	case BirdYellow:
		dir := core.Normalize(b.VX, b.VY)
		b.VX += dir.X * yellowBoost
		b.VY += dir.Y * yellowBoost
	case BirdBlue:
		host.SplitFrom(b)
	case BirdBlack:
		host.TriggerExplosion(b.X, b.Y, blackBlastRadius, blackBlastForce)
		b.Active = false
	case BirdWhite:
		host.TriggerExplosion(b.X, b.Y+eggDrop, eggBlastRadius, eggBlastForce)
	default:
		// Red and unknown types have no ability.
	}
}
