package sim

// Result is the state of a round.
type Result int

const (
	ResultPlaying Result = iota
	ResultWon
	ResultLost
)

// String returns the lowercase name of the result.
func (r Result) String() string {
	switch r {
	case ResultPlaying:
		return "playing"
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Split children spawned by a blue bird.
const (
	splitOffsetY = 10.0
	splitBoostX  = 30.0
	splitSpreadY = 80.0
)

// World owns every entity of a round and advances them in fixed steps.
// A World is not safe for concurrent use.
type World struct {
	tuning Tuning
	level  Level

	score  int
	result Result

	birds   []*Bird // Launch order; birds are deactivated, never removed
	pigs    []*Pig
	blocks  []*Block
	effects []*Effect

	active int // Index into birds of the bird on (or next for) the slingshot
	shots  int
	ticks  uint64
}

// NewWorld builds a world from a level descriptor.
func NewWorld(level Level, tuning Tuning) *World {
	w := &World{tuning: tuning, level: level}
	w.Reset()
	return w
}

// Reset rebuilds the round from the stored level. This is the only
// operation that moves the active bird index backwards.
func (w *World) Reset() {
	t := &w.tuning
	w.score = 0
	w.result = ResultPlaying
	w.active = 0
	w.shots = 0
	w.ticks = 0
	w.effects = nil

	w.pigs = make([]*Pig, 0, len(w.level.Pigs))
	for _, p := range w.level.Pigs {
		w.pigs = append(w.pigs, NewPig(p.X, p.Y, p.Radius))
	}

	w.blocks = make([]*Block, 0, len(w.level.Blocks))
	for _, b := range w.level.Blocks {
		w.blocks = append(w.blocks, NewBlock(b.X, b.Y, b.W, b.H, b.Material, b.Angle, t.MaterialProfile(b.Material)))
	}

	ax, ay := t.Anchor()
	w.birds = make([]*Bird, 0, len(w.level.Deck)+4)
	for i, bt := range w.level.Deck {
		x := ax - float64(i)*t.QueueSpacing
		w.birds = append(w.birds, NewBird(bt, x, ay+t.QueueDrop, t.BirdProfile(bt)))
	}
}

// Tuning returns the world's configuration.
func (w *World) Tuning() Tuning { return w.tuning }

// Level returns the level the world was built from.
func (w *World) Level() Level { return w.level }

// Score returns the cumulative score.
func (w *World) Score() int { return w.score }

// Result returns the round state.
func (w *World) Result() Result { return w.result }

// Shots returns how many birds were launched from the slingshot.
func (w *World) Shots() int { return w.shots }

// Ticks returns how many steps have been simulated.
func (w *World) Ticks() uint64 { return w.ticks }

// Birds returns the bird sequence. Callers must not modify it.
func (w *World) Birds() []*Bird { return w.birds }

// Pigs returns the live pigs. Callers must not modify it.
func (w *World) Pigs() []*Pig { return w.pigs }

// Blocks returns the live blocks. Callers must not modify it.
func (w *World) Blocks() []*Block { return w.blocks }

// Effects returns the active effect markers.
func (w *World) Effects() []*Effect { return w.effects }

// ActiveIndex returns the index of the active bird; it equals len(Birds())
// once every bird has been spent.
func (w *World) ActiveIndex() int { return w.active }

// ActiveBird returns the bird on the slingshot, or nil when none remain.
func (w *World) ActiveBird() *Bird {
	if w.active < 0 || w.active >= len(w.birds) {
		return nil
	}
	return w.birds[w.active]
}

// Anchor returns the slingshot rest position.
func (w *World) Anchor() (float64, float64) {
	return w.tuning.Anchor()
}

// Launch fires the active bird from the slingshot anchor with the given
// velocity. Returns false (and changes nothing) when there is no unlaunched
// active bird or the round is over.
func (w *World) Launch(vx, vy float64) bool {
	if w.result != ResultPlaying {
		return false
	}
	b := w.ActiveBird()
	if b == nil || b.Launched {
		return false
	}
	b.X, b.Y = w.Anchor()
	b.Launch(vx, vy)
	w.shots++
	return true
}

// TriggerAbility fires the active bird's ability. Returns false when the
// request was ignored.
func (w *World) TriggerAbility() bool {
	if w.result != ResultPlaying {
		return false
	}
	b := w.ActiveBird()
	if b == nil || b.AbilityUsed || !b.Launched || !b.Active {
		return false
	}
	b.TriggerAbility(w)
	return true
}

// SplitFrom appends two launched blue birds beside parent.
func (w *World) SplitFrom(parent *Bird) {
	profile := w.tuning.BirdProfile(BirdBlue)
	up := NewBird(BirdBlue, parent.X, parent.Y-splitOffsetY, profile)
	down := NewBird(BirdBlue, parent.X, parent.Y+splitOffsetY, profile)
	up.Launch(parent.VX+splitBoostX, parent.VY-splitSpreadY)
	down.Launch(parent.VX+splitBoostX, parent.VY+splitSpreadY)
	w.birds = append(w.birds, up, down)
}

// TriggerExplosion records an explosion marker and applies the blast to
// every live pig and block immediately.
func (w *World) TriggerExplosion(x, y, radius, force float64) {
	w.effects = append(w.effects, &Effect{
		Kind:   EffectExplosion,
		X:      x,
		Y:      y,
		Radius: radius,
		TTL:    w.tuning.ExplosionTTL,
		MaxTTL: w.tuning.ExplosionTTL,
	})
	ApplyExplosion(w.pigs, w.blocks, x, y, radius, force)
}

// Step advances the simulation by dt seconds. dt is clamped to the
// configured maximum; non-positive deltas and finished rounds are no-ops.
func (w *World) Step(dt float64) {
	if w.result != ResultPlaying || dt <= 0 {
		return
	}
	if w.tuning.MaxStep > 0 && dt > w.tuning.MaxStep {
		dt = w.tuning.MaxStep
	}
	w.ticks++

	t := &w.tuning
	floorY := t.FloorY()

	for _, b := range w.birds {
		b.Integrate(dt, t.Gravity, t.Width, floorY)
	}
	for _, p := range w.pigs {
		p.Integrate(dt, t.Gravity, floorY)
	}
	for _, blk := range w.blocks {
		blk.Integrate(dt, t.Gravity, floorY)
	}

	for _, b := range w.birds {
		if !b.Active || !b.Launched {
			continue
		}
		for _, p := range w.pigs {
			w.score += ResolveBirdPig(b, p)
		}
		for _, blk := range w.blocks {
			w.score += ResolveBirdBlock(b, blk)
		}
	}

	for _, p := range w.pigs {
		for _, blk := range w.blocks {
			ResolvePigBlock(p, blk)
		}
	}

	if t.BlockContacts {
		for i := 0; i < len(w.blocks); i++ {
			for j := i + 1; j < len(w.blocks); j++ {
				ResolveBlockBlock(w.blocks[i], w.blocks[j])
			}
		}
	}

	w.prune()
	w.expireEffects(dt)

	if len(w.pigs) == 0 {
		w.result = ResultWon
		w.score += t.CompletionBonus
	}

	w.selectNextBird()

	if w.result == ResultPlaying && w.active >= len(w.birds) && len(w.pigs) > 0 {
		w.result = ResultLost
	}
}

// prune drops dead pigs and blocks, keeping the survivors in order.
func (w *World) prune() {
	pigs := w.pigs[:0]
	for _, p := range w.pigs {
		if p.Alive {
			pigs = append(pigs, p)
		}
	}
	clear(w.pigs[len(pigs):])
	w.pigs = pigs

	blocks := w.blocks[:0]
	for _, b := range w.blocks {
		if b.Alive {
			blocks = append(blocks, b)
		}
	}
	clear(w.blocks[len(blocks):])
	w.blocks = blocks
}

// expireEffects ages every effect by dt and drops the expired ones.
func (w *World) expireEffects(dt float64) {
	live := w.effects[:0]
	for _, e := range w.effects {
		e.TTL -= dt
		if e.TTL > 0 {
			live = append(live, e)
		}
	}
	clear(w.effects[len(live):])
	w.effects = live
}

// selectNextBird moves the active index past every bird that was launched
// and is no longer active. A newly selected bird that is still waiting in
// the queue is moved onto the slingshot.
func (w *World) selectNextBird() {
	for w.active < len(w.birds) {
		b := w.birds[w.active]
		if !b.Launched || b.Active {
			return
		}
		w.active++
		if next := w.ActiveBird(); next != nil && !next.Launched {
			next.X, next.Y = w.Anchor()
		}
	}
}
