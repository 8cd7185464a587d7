package sim

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

type explosionCall struct {
	x, y, radius, force float64
}

type fakeHost struct {
	splits     []*Bird
	explosions []explosionCall
}

func (h *fakeHost) SplitFrom(parent *Bird) {
	h.splits = append(h.splits, parent)
}

func (h *fakeHost) TriggerExplosion(x, y, radius, force float64) {
	h.explosions = append(h.explosions, explosionCall{x, y, radius, force})
}

func testBird(bt BirdType) *Bird {
	t := DefaultTuning()
	return NewBird(bt, 100, 100, t.BirdProfile(bt))
}

func TestNewBirdProfile(t *testing.T) {
	b := testBird(BirdBlack)
	if b.Radius != 20 || b.Power != 1.45 {
		t.Errorf("black bird radius/power = %v/%v, want 20/1.45", b.Radius, b.Power)
	}
	if b.Mass != 10 {
		t.Errorf("mass = %v, want radius*0.5 = 10", b.Mass)
	}
	if !b.Active || b.Launched || b.AbilityUsed {
		t.Errorf("new bird flags = active:%v launched:%v used:%v", b.Active, b.Launched, b.AbilityUsed)
	}
}

func TestBirdIntegrateBeforeLaunch(t *testing.T) {
	b := testBird(BirdRed)
	b.Integrate(1, 620, 1280, 650)
	if b.X != 100 || b.Y != 100 || b.VY != 0 {
		t.Errorf("unlaunched bird moved to (%v, %v) vy=%v", b.X, b.Y, b.VY)
	}
}

func TestBirdLaunchOnce(t *testing.T) {
	b := testBird(BirdRed)
	b.Launch(300, -200)
	b.Launch(1, 1)
	if b.VX != 300 || b.VY != -200 {
		t.Errorf("velocity = (%v, %v), want (300, -200)", b.VX, b.VY)
	}
}

func TestBirdFloorContact(t *testing.T) {
	b := testBird(BirdRed)
	floorY := b.Y + b.Radius + 1
	b.Launch(100, 100)
	b.Integrate(0.1, 0, 1e6, floorY)

	if b.Y != floorY-b.Radius {
		t.Errorf("Y = %v, want %v", b.Y, floorY-b.Radius)
	}
	if !approx(b.VY, -25) {
		t.Errorf("VY = %v, want -25", b.VY)
	}
	if !approx(b.VX, 87) {
		t.Errorf("VX = %v, want 87", b.VX)
	}
}

func TestBirdWallContact(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		wantVX float64
	}{
		{"left wall", 19, -100, 18, 35},
		{"right wall", 481, 100, 482, -35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBird(BirdRed)
			b.X = tt.x
			b.Launch(tt.vx, 0)
			b.Integrate(0.1, 0, 500, 1e6)
			if !approx(b.X, tt.wantX) {
				t.Errorf("X = %v, want %v", b.X, tt.wantX)
			}
			if !approx(b.VX, tt.wantVX) {
				t.Errorf("VX = %v, want %v", b.VX, tt.wantVX)
			}
		})
	}
}

func TestBirdSettlesAfterDwell(t *testing.T) {
	b := testBird(BirdRed)
	b.Launch(0, 0)

	for range 8 {
		b.Integrate(0.25, 0, 1e6, 1e6)
	}
	if !b.Active {
		t.Fatalf("bird settled early: rest timer %v", b.RestTimer)
	}
	if b.RestTimer != 2.0 {
		t.Errorf("RestTimer = %v, want 2.0", b.RestTimer)
	}

	b.Integrate(0.25, 0, 1e6, 1e6)
	if b.Active {
		t.Errorf("bird still active with rest timer %v", b.RestTimer)
	}
}

func TestBirdSettleThresholdIsStrict(t *testing.T) {
	b := testBird(BirdRed)
	b.Launch(4, 2) // speed^2 == 20

	for range 20 {
		b.Integrate(0.25, 0, 1e6, 1e6)
	}
	if b.RestTimer != 0 {
		t.Errorf("RestTimer = %v, want 0 at the threshold speed", b.RestTimer)
	}
	if !b.Active {
		t.Error("bird settled while moving at the threshold speed")
	}
}

func TestBirdRestTimerResetsOnMotion(t *testing.T) {
	b := testBird(BirdRed)
	b.Launch(0, 0)
	b.Integrate(0.25, 0, 1e6, 1e6)
	b.VX = 50
	b.Integrate(0.25, 0, 1e6, 1e6)
	if b.RestTimer != 0 {
		t.Errorf("RestTimer = %v, want reset to 0", b.RestTimer)
	}
}

func TestBirdAbilities(t *testing.T) {
	t.Run("yellow boosts along velocity", func(t *testing.T) {
		b := testBird(BirdYellow)
		b.Launch(3, 4)
		h := &fakeHost{}
		b.TriggerAbility(h)
		if !approx(b.VX, 135) || !approx(b.VY, 180) {
			t.Errorf("velocity = (%v, %v), want (135, 180)", b.VX, b.VY)
		}
		if !b.AbilityUsed {
			t.Error("ability not marked used")
		}
	})

	t.Run("blue requests split", func(t *testing.T) {
		b := testBird(BirdBlue)
		b.Launch(200, 0)
		h := &fakeHost{}
		b.TriggerAbility(h)
		if len(h.splits) != 1 || h.splits[0] != b {
			t.Errorf("splits = %v, want one split from the bird", h.splits)
		}
	})

	t.Run("black explodes and deactivates", func(t *testing.T) {
		b := testBird(BirdBlack)
		b.Launch(200, 0)
		h := &fakeHost{}
		b.TriggerAbility(h)
		want := explosionCall{100, 100, 120, 170}
		if len(h.explosions) != 1 || h.explosions[0] != want {
			t.Errorf("explosions = %v, want [%v]", h.explosions, want)
		}
		if b.Active {
			t.Error("black bird still active after exploding")
		}
	})

	t.Run("white drops an egg below", func(t *testing.T) {
		b := testBird(BirdWhite)
		b.Launch(200, 0)
		h := &fakeHost{}
		b.TriggerAbility(h)
		want := explosionCall{100, 170, 95, 145}
		if len(h.explosions) != 1 || h.explosions[0] != want {
			t.Errorf("explosions = %v, want [%v]", h.explosions, want)
		}
		if !b.Active {
			t.Error("white bird deactivated by its egg")
		}
	})

	t.Run("red only consumes the flag", func(t *testing.T) {
		b := testBird(BirdRed)
		b.Launch(200, 10)
		h := &fakeHost{}
		b.TriggerAbility(h)
		if !b.AbilityUsed {
			t.Error("ability not marked used")
		}
		if b.VX != 200 || b.VY != 10 || len(h.splits)+len(h.explosions) != 0 {
			t.Error("red ability had a side effect")
		}
	})
}

func TestBirdAbilityIsOneShot(t *testing.T) {
	b := testBird(BirdWhite)
	b.Launch(200, 0)
	h := &fakeHost{}
	b.TriggerAbility(h)
	b.TriggerAbility(h)
	if len(h.explosions) != 1 {
		t.Errorf("explosions = %d, want 1", len(h.explosions))
	}
}

func TestBirdAbilityRequiresFlight(t *testing.T) {
	h := &fakeHost{}

	unlaunched := testBird(BirdBlack)
	unlaunched.TriggerAbility(h)
	if unlaunched.AbilityUsed || len(h.explosions) != 0 {
		t.Error("ability fired before launch")
	}

	settled := testBird(BirdBlack)
	settled.Launch(10, 0)
	settled.Active = false
	settled.TriggerAbility(h)
	if settled.AbilityUsed || len(h.explosions) != 0 {
		t.Error("ability fired on a settled bird")
	}
}
