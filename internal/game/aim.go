package game

import (
	"math"

	"github.com/vovakirdan/slingshot/internal/config"
	"github.com/vovakirdan/slingshot/internal/core"
)

// previewInterval is the time between trajectory preview dots in seconds.
const previewInterval = 0.08

// Aim is the slingshot pull: the offset of the drag point from the anchor.
// Pulling back and down launches forward and up.
type Aim struct {
	DX, DY float64
	cfg    config.AimConfig
	power  float64
}

// NewAim creates an aim resting at a comfortable default pull.
func NewAim(cfg config.AimConfig, power float64) Aim {
	if power <= 0 {
		power = 1
	}
	a := Aim{cfg: cfg, power: power}
	a.ResetPull()
	return a
}

// ResetPull moves the drag point back to the default pull.
func (a *Aim) ResetPull() {
	a.DX = -a.cfg.MaxDrag * 0.6
	a.DY = a.cfg.MaxDrag * 0.35
	a.clamp()
}

// Move shifts the drag point by steps in each axis and keeps it within the
// maximum pull distance.
func (a *Aim) Move(stepsX, stepsY int) {
	a.DX += float64(stepsX) * a.cfg.Step
	a.DY += float64(stepsY) * a.cfg.Step
	a.clamp()
}

func (a *Aim) clamp() {
	d := core.Length(a.DX, a.DY)
	if d > a.cfg.MaxDrag && d > 0 {
		s := a.cfg.MaxDrag / d
		a.DX *= s
		a.DY *= s
	}
}

// Velocity returns the launch velocity for the current pull: the vector from
// the drag point back to the anchor, scaled and clamped per axis.
func (a Aim) Velocity() (vx, vy float64) {
	k := a.cfg.Scale * a.power
	vx = core.Clamp(-a.DX*k, -a.cfg.MaxVX, a.cfg.MaxVX)
	vy = core.Clamp(-a.DY*k, -a.cfg.MaxVY, a.cfg.MaxVY)
	return vx, vy
}

// Pull returns the pull strength as a fraction of the maximum.
func (a Aim) Pull() float64 {
	if a.cfg.MaxDrag <= 0 {
		return 0
	}
	return math.Min(1, core.Length(a.DX, a.DY)/a.cfg.MaxDrag)
}

// Angle returns the launch angle in degrees above the horizon.
func (a Aim) Angle() float64 {
	vx, vy := a.Velocity()
	return math.Atan2(-vy, vx) * 180 / math.Pi
}

// PreviewPath returns ballistic positions from (x, y) with velocity (vx, vy)
// under gravity, one per preview interval, stopping at the floor.
func PreviewPath(x, y, vx, vy, gravity, floorY float64, steps int) []core.Vec2 {
	points := make([]core.Vec2, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) * previewInterval
		px := x + vx*t
		py := y + vy*t + 0.5*gravity*t*t
		if py > floorY {
			break
		}
		points = append(points, core.V(px, py))
	}
	return points
}
