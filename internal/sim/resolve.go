package sim

import (
	"math"

	"github.com/vovakirdan/slingshot/internal/core"
)

// Score awarded by bird hits.
const (
	ScorePigHit     = 80
	ScorePigKill    = 1000
	ScoreBlockHit   = 55
	ScoreBlockBreak = 450
)

// Bird vs pig.
const (
	pigHitDamage = 0.08
	pigHitPush   = 0.05
	birdRecoil   = 0.02
)

// Bird vs block.
const (
	blockRestitution    = 0.28
	blockRecoil         = 0.007
	blockDamageFloor    = 130.0
	blockDamageScale    = 0.026
	degenerateDistSq    = 0.0001
	pigBlockDamping     = -0.2
	pigBlockImpactFloor = 35.0
	pigBlockToBlock     = 0.01
	pigBlockToPig       = 0.006
)

// Block vs block.
const (
	blockImpulseVertical   = 0.3
	blockImpulseHorizontal = 0.2
	blockBlockImpactFloor  = 70.0
	blockBlockDamageScale  = 0.008
	minBlockMass           = 0.001
)

// ResolveBirdPig resolves a circle-circle contact between a bird and a pig.
// Returns the score earned: 0 without contact, ScorePigKill if this hit
// killed the pig, otherwise ScorePigHit.
func ResolveBirdPig(b *Bird, p *Pig) int {
	if !p.Alive || !b.Active {
		return 0
	}
	d := core.Distance(b.X, b.Y, p.X, p.Y)
	if b.Radius+p.Radius-d <= 0 {
		return 0
	}

	impact := b.Impact()
	p.Damage(impact * pigHitDamage)

	n := core.Normalize(p.X-b.X, p.Y-b.Y)
	p.VX += n.X * impact * pigHitPush
	p.VY += n.Y * impact * pigHitPush
	b.VX -= n.X * impact * birdRecoil
	b.VY -= n.Y * impact * birdRecoil

	if p.Alive {
		return ScorePigHit
	}
	return ScorePigKill
}

// ResolveBirdBlock resolves a circle-rectangle contact using the closest
// point on the block. The bird is pushed out of the block, bounces if it was
// moving inward, and damages the block when the impact is strong enough.
// Returns 0 without contact, ScoreBlockBreak if the block broke, otherwise
// ScoreBlockHit.
func ResolveBirdBlock(b *Bird, blk *Block) int {
	if !blk.Alive || !b.Active {
		return 0
	}
	closestX := core.Clamp(b.X, blk.X, blk.X+blk.W)
	closestY := core.Clamp(b.Y, blk.Y, blk.Y+blk.H)
	dx := b.X - closestX
	dy := b.Y - closestY
	distSq := dx*dx + dy*dy
	if distSq > b.Radius*b.Radius {
		return 0
	}

	dist := math.Sqrt(math.Max(degenerateDistSq, distSq))
	penetration := b.Radius - dist
	n := core.V(0, -1) // center inside the block: push straight up
	if distSq >= degenerateDistSq {
		n = core.V(dx/dist, dy/dist)
	}
	b.X += n.X * penetration
	b.Y += n.Y * penetration

	impact := b.Impact()
	vn := b.VX*n.X + b.VY*n.Y
	if vn < 0 {
		impulse := -(1 + blockRestitution) * vn
		b.VX += impulse * n.X
		b.VY += impulse * n.Y
		blk.VX -= n.X * impact * blockRecoil
		blk.VY -= n.Y * impact * blockRecoil
	}

	if impact > blockDamageFloor {
		blk.Damage((impact - blockDamageFloor) * blockDamageScale)
	}

	if blk.Alive {
		return ScoreBlockHit
	}
	return ScoreBlockBreak
}

// ResolvePigBlock pushes a pig out of a block along the axis of least
// overlap, treating the pig as its bounding square. Hard contacts damage both.
func ResolvePigBlock(p *Pig, blk *Block) {
	if !p.Alive || !blk.Alive {
		return
	}
	box := p.Bounds()
	r := blk.Rect()
	if !core.RectsOverlap(box, r) {
		return
	}

	overlapX := math.Min(box.Right()-r.X, r.Right()-box.X)
	overlapY := math.Min(box.Bottom()-r.Y, r.Bottom()-box.Y)
	cx, cy := blk.Center()

	if overlapY < overlapX {
		if p.Y < cy {
			p.Y -= overlapY
		} else {
			p.Y += overlapY
		}
		p.VY *= pigBlockDamping
	} else {
		if p.X < cx {
			p.X -= overlapX
		} else {
			p.X += overlapX
		}
		p.VX *= pigBlockDamping
	}

	impact := core.Length(p.VX, p.VY) * p.Mass
	if impact > pigBlockImpactFloor {
		blk.Damage((impact - pigBlockImpactFloor) * pigBlockToBlock)
		p.Damage((impact - pigBlockImpactFloor) * pigBlockToPig)
	}
}

// ResolveBlockBlock separates two overlapping blocks along the axis of least
// overlap. Positional correction is split by inverse mass, so the heavier
// block moves less; ties between the axes resolve vertically.
func ResolveBlockBlock(a, b *Block) {
	if !a.Alive || !b.Alive {
		return
	}
	if !core.RectsOverlap(a.Rect(), b.Rect()) {
		return
	}

	overlapX := math.Min(a.X+a.W-b.X, b.X+b.W-a.X)
	overlapY := math.Min(a.Y+a.H-b.Y, b.Y+b.H-a.Y)
	invA := 1 / math.Max(minBlockMass, a.Mass)
	invB := 1 / math.Max(minBlockMass, b.Mass)
	totalInv := invA + invB
	acx, acy := a.Center()
	bcx, bcy := b.Center()

	if overlapY <= overlapX {
		// dir is +1 when a sits above b, so a moves up and b moves down.
		dir := -1.0
		if acy < bcy {
			dir = 1.0
		}
		a.Y -= overlapY * invA / totalInv * dir
		b.Y += overlapY * invB / totalInv * dir

		impulse := (a.VY - b.VY) * blockImpulseVertical
		a.VY -= impulse * invA
		b.VY += impulse * invB
	} else {
		dir := -1.0
		if acx < bcx {
			dir = 1.0
		}
		a.X -= overlapX * invA / totalInv * dir
		b.X += overlapX * invB / totalInv * dir

		impulse := (a.VX - b.VX) * blockImpulseHorizontal
		a.VX -= impulse * invA
		b.VX += impulse * invB
	}

	impact := core.Length(a.VX-b.VX, a.VY-b.VY) * math.Min(a.Mass, b.Mass)
	if impact > blockBlockImpactFloor {
		damage := (impact - blockBlockImpactFloor) * blockBlockDamageScale
		a.Damage(damage)
		b.Damage(damage)
	}
}
