package sim

import (
	"math"
	"testing"
)

func testBlock(x, y, w, h float64, m Material) *Block {
	t := DefaultTuning()
	return NewBlock(x, y, w, h, m, 0, t.MaterialProfile(m))
}

func TestResolveBirdPig(t *testing.T) {
	tests := []struct {
		name      string
		pigX      float64
		health    float64
		active    bool
		wantScore int
		wantAlive bool
	}{
		{"no contact", 200, 140, true, 0, true},
		{"hit", 130, 140, true, ScorePigHit, true},
		{"kill", 130, 10, true, ScorePigKill, false},
		{"inactive bird", 130, 140, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBird(BirdRed) // impact = 100 * 9 * 1.0
			b.Launch(100, 0)
			b.Active = tt.active
			p := NewPig(tt.pigX, 100, 20)
			p.Health = tt.health

			got := ResolveBirdPig(b, p)
			if got != tt.wantScore {
				t.Errorf("score = %d, want %d", got, tt.wantScore)
			}
			if p.Alive != tt.wantAlive {
				t.Errorf("pig alive = %v, want %v", p.Alive, tt.wantAlive)
			}
		})
	}
}

func TestResolveBirdPigImpulse(t *testing.T) {
	b := testBird(BirdRed)
	b.Launch(100, 0)
	p := NewPig(130, 100, 20)

	ResolveBirdPig(b, p)

	if !approx(p.Health, 140-72) {
		t.Errorf("pig health = %v, want 68", p.Health)
	}
	if !approx(p.VX, 45) || !approx(p.VY, 0) {
		t.Errorf("pig velocity = (%v, %v), want (45, 0)", p.VX, p.VY)
	}
	if !approx(b.VX, 82) {
		t.Errorf("bird VX = %v, want 82", b.VX)
	}
}

func TestResolveBirdPigDeadPig(t *testing.T) {
	b := testBird(BirdRed)
	b.Launch(100, 0)
	p := NewPig(110, 100, 20)
	p.Alive = false
	if got := ResolveBirdPig(b, p); got != 0 {
		t.Errorf("score = %d, want 0 for a dead pig", got)
	}
}

func TestResolveBirdBlock(t *testing.T) {
	b := testBird(BirdRed)
	b.X, b.Y = 90, 120
	b.Launch(200, 0)
	blk := testBlock(100, 100, 40, 40, MaterialWood)

	got := ResolveBirdBlock(b, blk)
	if got != ScoreBlockHit {
		t.Errorf("score = %d, want %d", got, ScoreBlockHit)
	}
	if !approx(b.X, 82) {
		t.Errorf("bird X = %v, want 82 after pushout", b.X)
	}
	if !approx(b.VX, -56) {
		t.Errorf("bird VX = %v, want -56 after bounce", b.VX)
	}
	if !approx(blk.VX, 12.6) {
		t.Errorf("block VX = %v, want 12.6", blk.VX)
	}
	if !approx(blk.Health, 130-(1800-130)*0.026) {
		t.Errorf("block health = %v", blk.Health)
	}
}

func TestResolveBirdBlockBreak(t *testing.T) {
	b := testBird(BirdRed)
	b.X, b.Y = 90, 120
	b.Launch(200, 0)
	blk := testBlock(100, 100, 40, 40, MaterialGlass)
	blk.Health = 10

	if got := ResolveBirdBlock(b, blk); got != ScoreBlockBreak {
		t.Errorf("score = %d, want %d", got, ScoreBlockBreak)
	}
	if blk.Alive {
		t.Error("block survived")
	}
}

func TestResolveBirdBlockSeparatingVelocity(t *testing.T) {
	b := testBird(BirdRed)
	b.X, b.Y = 90, 120
	b.Launch(-10, 0) // already moving away, impact below the damage floor
	blk := testBlock(100, 100, 40, 40, MaterialStone)

	ResolveBirdBlock(b, blk)
	if b.VX != -10 {
		t.Errorf("bird VX = %v, want unchanged -10", b.VX)
	}
	if blk.VX != 0 {
		t.Errorf("block VX = %v, want 0 without an inward hit", blk.VX)
	}
	if blk.Health != 240 {
		t.Errorf("block health = %v, want 240 below the damage floor", blk.Health)
	}
}

func TestResolveBirdBlockCenterInside(t *testing.T) {
	b := testBird(BirdRed)
	b.X, b.Y = 120, 120
	b.Launch(0, 0)
	blk := testBlock(100, 100, 40, 40, MaterialWood)

	ResolveBirdBlock(b, blk)
	if b.X != 120 {
		t.Errorf("bird X = %v, want 120", b.X)
	}
	want := 120 - (18 - math.Sqrt(0.0001))
	if !approx(b.Y, want) {
		t.Errorf("bird Y = %v, want %v (pushed up)", b.Y, want)
	}
}

func TestResolveBirdBlockNoContact(t *testing.T) {
	b := testBird(BirdRed)
	b.X, b.Y = 50, 120
	b.Launch(200, 0)
	blk := testBlock(100, 100, 40, 40, MaterialWood)
	if got := ResolveBirdBlock(b, blk); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
	if b.X != 50 || b.VX != 200 {
		t.Error("bird changed without contact")
	}
}

func TestResolvePigBlockVertical(t *testing.T) {
	p := NewPig(50, 90, 20)
	p.VY = 50
	blk := testBlock(0, 100, 100, 50, MaterialWood)

	ResolvePigBlock(p, blk)

	if !approx(p.Y, 80) {
		t.Errorf("pig Y = %v, want 80 (pushed up out of the block)", p.Y)
	}
	if !approx(p.VY, -10) {
		t.Errorf("pig VY = %v, want -10", p.VY)
	}
	// impact = 10 * 13 = 130
	if !approx(blk.Health, 130-95*0.01) {
		t.Errorf("block health = %v", blk.Health)
	}
	if !approx(p.Health, 140-95*0.006) {
		t.Errorf("pig health = %v", p.Health)
	}
}

func TestResolvePigBlockHorizontal(t *testing.T) {
	tests := []struct {
		name  string
		pigX  float64
		wantX float64
	}{
		{"pig left of block", 95, 80},
		{"pig right of block", 145, 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPig(tt.pigX, 125, 20)
			p.VX = 10
			blk := testBlock(100, 100, 40, 60, MaterialWood)

			ResolvePigBlock(p, blk)
			if !approx(p.X, tt.wantX) {
				t.Errorf("pig X = %v, want %v", p.X, tt.wantX)
			}
			if !approx(p.VX, -2) {
				t.Errorf("pig VX = %v, want -2", p.VX)
			}
			if p.Y != 125 {
				t.Errorf("pig Y changed to %v", p.Y)
			}
		})
	}
}

func TestResolvePigBlockTouchingIsNotOverlap(t *testing.T) {
	p := NewPig(50, 80, 20) // bottom edge at y=100
	blk := testBlock(0, 100, 100, 50, MaterialWood)
	ResolvePigBlock(p, blk)
	if p.Y != 80 {
		t.Errorf("pig Y = %v, want 80", p.Y)
	}
}

func TestResolveBlockBlockVertical(t *testing.T) {
	a := testBlock(0, 0, 40, 40, MaterialWood)
	b := testBlock(0, 30, 40, 40, MaterialWood)

	ResolveBlockBlock(a, b)
	if !approx(a.Y, -5) || !approx(b.Y, 35) {
		t.Errorf("Y = (%v, %v), want (-5, 35)", a.Y, b.Y)
	}
}

func TestResolveBlockBlockHorizontal(t *testing.T) {
	a := testBlock(0, 0, 40, 40, MaterialWood)
	b := testBlock(30, 0, 40, 40, MaterialWood)

	ResolveBlockBlock(a, b)
	if !approx(a.X, -5) || !approx(b.X, 35) {
		t.Errorf("X = (%v, %v), want (-5, 35)", a.X, b.X)
	}
}

func TestResolveBlockBlockHeavierMovesLess(t *testing.T) {
	a := testBlock(0, 0, 40, 40, MaterialStone)
	b := testBlock(0, 30, 40, 40, MaterialWood)

	ResolveBlockBlock(a, b)
	movedA := -a.Y
	movedB := b.Y - 30
	if movedA >= movedB {
		t.Errorf("stone moved %v, wood moved %v; want stone to move less", movedA, movedB)
	}
	if !approx(movedA+movedB, 10) {
		t.Errorf("total correction = %v, want 10", movedA+movedB)
	}
}

func TestResolveBlockBlockTouching(t *testing.T) {
	a := testBlock(0, 0, 40, 40, MaterialWood)
	b := testBlock(40, 0, 40, 40, MaterialWood)
	ResolveBlockBlock(a, b)
	if a.X != 0 || b.X != 40 {
		t.Error("touching blocks were separated")
	}
}
