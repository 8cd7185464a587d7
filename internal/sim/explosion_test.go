package sim

import "testing"

func TestApplyExplosion(t *testing.T) {
	near := NewPig(150, 100, 20)
	far := NewPig(300, 100, 20)
	blk := testBlock(140, 90, 20, 20, MaterialWood) // center (150, 100)

	ApplyExplosion([]*Pig{near, far}, []*Block{blk}, 100, 100, 100, 100)

	// d=50 of 100, so strength is half the force.
	if !approx(near.VX, 40) || !approx(near.VY, 0) {
		t.Errorf("near pig velocity = (%v, %v), want (40, 0)", near.VX, near.VY)
	}
	if !approx(near.Health, 105) {
		t.Errorf("near pig health = %v, want 105", near.Health)
	}
	if far.VX != 0 || far.Health != 140 {
		t.Error("pig outside the radius was affected")
	}
	if !approx(blk.VX, 40) || !approx(blk.Health, 95) {
		t.Errorf("block velocity/health = %v/%v, want 40/95", blk.VX, blk.Health)
	}
}

func TestApplyExplosionAtCenter(t *testing.T) {
	p := NewPig(100, 100, 20)
	ApplyExplosion([]*Pig{p}, nil, 100, 100, 50, 100)
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("velocity = (%v, %v), want no push at the exact center", p.VX, p.VY)
	}
	if !approx(p.Health, 70) {
		t.Errorf("health = %v, want 70", p.Health)
	}
}

func TestApplyExplosionKills(t *testing.T) {
	p := NewPig(100, 100, 20)
	p.Health = 1
	blk := testBlock(90, 90, 20, 20, MaterialGlass)
	blk.Health = 1

	ApplyExplosion([]*Pig{p}, []*Block{blk}, 100, 100, 50, 100)
	if p.Alive || blk.Alive {
		t.Error("explosion did not kill weak targets")
	}
}

func TestApplyExplosionSkipsDead(t *testing.T) {
	p := NewPig(100, 100, 20)
	p.Alive = false
	ApplyExplosion([]*Pig{p}, nil, 110, 100, 50, 100)
	if p.VX != 0 {
		t.Error("dead pig was pushed")
	}
}
