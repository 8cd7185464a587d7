package sim

import "github.com/vovakirdan/slingshot/internal/core"

const (
	explosionPush   = 0.8
	explosionDamage = 0.7
)

// ApplyExplosion pushes and damages every live pig and block whose effective
// center lies within radius of (x, y). Strength falls off linearly from
// force at the center to zero at the edge. Pigs are processed before blocks.
func ApplyExplosion(pigs []*Pig, blocks []*Block, x, y, radius, force float64) {
	if radius <= 0 {
		return
	}
	for _, p := range pigs {
		if !p.Alive {
			continue
		}
		strength, n, ok := blast(x, y, p.X, p.Y, radius, force)
		if !ok {
			continue
		}
		p.VX += n.X * strength * explosionPush
		p.VY += n.Y * strength * explosionPush
		p.Damage(strength * explosionDamage)
	}
	for _, b := range blocks {
		if !b.Alive {
			continue
		}
		cx, cy := b.Center()
		strength, n, ok := blast(x, y, cx, cy, radius, force)
		if !ok {
			continue
		}
		b.VX += n.X * strength * explosionPush
		b.VY += n.Y * strength * explosionPush
		b.Damage(strength * explosionDamage)
	}
}

// blast returns the falloff strength and push direction for a point at
// (cx, cy), or ok=false when the point is outside the radius.
func blast(x, y, cx, cy, radius, force float64) (float64, core.Vec2, bool) {
	d := core.Distance(x, y, cx, cy)
	if d > radius {
		return 0, core.Vec2{}, false
	}
	strength := (1 - core.Clamp(d/radius, 0, 1)) * force
	return strength, core.Normalize(cx-x, cy-y), true
}
