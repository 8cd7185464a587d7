package sim

import "math"

// Snapshot is a read-only copy of the world for renderers, replays and
// determinism checks. Entities are copied by value, so mutating a snapshot
// never affects the world.
type Snapshot struct {
	Tick uint64

	Width, Height float64
	FloorY        float64
	Gravity       float64
	AnchorX       float64
	AnchorY       float64
	AnchorRadius  float64

	Score       int
	Result      Result
	ActiveIndex int
	HasActive   bool
	ActiveType  BirdType
	Shots       int

	Birds   []Bird
	Pigs    []Pig
	Blocks  []Block
	Effects []Effect
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	t := &w.tuning
	ax, ay := t.Anchor()
	snap := Snapshot{
		Tick:         w.ticks,
		Width:        t.Width,
		Height:       t.Height,
		FloorY:       t.FloorY(),
		Gravity:      t.Gravity,
		AnchorX:      ax,
		AnchorY:      ay,
		AnchorRadius: t.SlingshotRadius,
		Score:        w.score,
		Result:       w.result,
		ActiveIndex:  w.active,
		Shots:        w.shots,
		Birds:        make([]Bird, len(w.birds)),
		Pigs:         make([]Pig, len(w.pigs)),
		Blocks:       make([]Block, len(w.blocks)),
		Effects:      make([]Effect, len(w.effects)),
	}
	if b := w.ActiveBird(); b != nil {
		snap.HasActive = true
		snap.ActiveType = b.Type
	}
	for i, b := range w.birds {
		snap.Birds[i] = *b
	}
	for i, p := range w.pigs {
		snap.Pigs[i] = *p
	}
	for i, b := range w.blocks {
		snap.Blocks[i] = *b
	}
	for i, e := range w.effects {
		snap.Effects[i] = *e
	}
	return snap
}

// QueuedBirds returns the unlaunched birds waiting behind the active one.
func (snap *Snapshot) QueuedBirds() []Bird {
	var queued []Bird
	for i := snap.ActiveIndex + 1; i < len(snap.Birds); i++ {
		if !snap.Birds[i].Launched {
			queued = append(queued, snap.Birds[i])
		}
	}
	return queued
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean bit-identical
// state.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Result)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)       //#nosec G115 -- hash computation

	h = h*31 + uint64(len(snap.Birds))
	for _, b := range snap.Birds {
		h = h*31 + uint64(b.Type) //#nosec G115 -- hash computation
		h = hashFloats(h, b.X, b.Y, b.VX, b.VY, b.RestTimer)
		h = hashFloats(h, boolf(b.Launched), boolf(b.Active), boolf(b.AbilityUsed))
	}

	h = h*31 + uint64(len(snap.Pigs))
	for _, p := range snap.Pigs {
		h = hashFloats(h, p.X, p.Y, p.VX, p.VY, p.Health)
	}

	h = h*31 + uint64(len(snap.Blocks))
	for _, b := range snap.Blocks {
		h = hashFloats(h, b.X, b.Y, b.VX, b.VY, b.Health)
	}

	h = h*31 + uint64(len(snap.Effects))
	for _, e := range snap.Effects {
		h = hashFloats(h, e.X, e.Y, e.Radius, e.TTL)
	}
	return h
}

func hashFloats(h uint64, vs ...float64) uint64 {
	for _, v := range vs {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
