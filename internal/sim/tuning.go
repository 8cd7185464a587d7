package sim

// Tuning is the immutable configuration of a world. It is resolved once
// (usually from YAML via the config package) and shared by every entity.
type Tuning struct {
	Width       float64 // World width
	Height      float64 // World height
	FloorOffset float64 // Distance from the bottom edge to the floor
	Gravity     float64 // Downward acceleration in units/s^2

	SlingshotX      float64 // Slingshot anchor X
	SlingshotLift   float64 // Anchor height above the floor
	SlingshotRadius float64
	QueueSpacing    float64 // Horizontal gap between waiting birds
	QueueDrop       float64 // Waiting birds sit this far below the anchor

	Birds     map[BirdType]BirdProfile
	Materials map[Material]MaterialProfile

	// DefaultBird is used when a type has no profile.
	DefaultBird BirdType
	// DefaultMaterial is used when a material has no profile.
	DefaultMaterial MaterialProfile

	ExplosionTTL    float64 // Lifetime of an explosion marker in seconds
	CompletionBonus int     // Awarded once when the last pig dies
	MaxStep         float64 // Upper bound for a single Step delta

	// BlockContacts enables block-vs-block resolution after the pig pass.
	BlockContacts bool
}

// FloorY returns the Y coordinate of the floor surface.
func (t *Tuning) FloorY() float64 {
	return t.Height - t.FloorOffset
}

// Anchor returns the slingshot rest position.
func (t *Tuning) Anchor() (x, y float64) {
	return t.SlingshotX, t.FloorY() - t.SlingshotLift
}

// BirdProfile returns the profile for a bird type, falling back to the
// default bird's profile for unknown types.
func (t *Tuning) BirdProfile(bt BirdType) BirdProfile {
	if p, ok := t.Birds[bt]; ok {
		return p
	}
	return t.Birds[t.DefaultBird]
}

// MaterialProfile returns the profile for a material, falling back to
// DefaultMaterial for unknown materials.
func (t *Tuning) MaterialProfile(m Material) MaterialProfile {
	if p, ok := t.Materials[m]; ok {
		return p
	}
	return t.DefaultMaterial
}

// DefaultTuning returns the reference constants of the game.
func DefaultTuning() Tuning {
	return Tuning{
		Width:       1280,
		Height:      720,
		FloorOffset: 70,
		Gravity:     620,

		SlingshotX:      160,
		SlingshotLift:   18,
		SlingshotRadius: 16,
		QueueSpacing:    44,
		QueueDrop:       4,

		Birds: map[BirdType]BirdProfile{
			BirdRed:    {Radius: 18, Power: 1.0, Color: "#d62d2d"},
			BirdBlue:   {Radius: 12, Power: 0.78, Color: "#3a7bff"},
			BirdYellow: {Radius: 14, Power: 0.84, Color: "#f5cd1f"},
			BirdBlack:  {Radius: 20, Power: 1.45, Color: "#2e2f35"},
			BirdWhite:  {Radius: 16, Power: 0.9, Color: "#f1f1f1"},
		},
		Materials: map[Material]MaterialProfile{
			MaterialWood:  {Density: 1.0, MaxHealth: 130},
			MaterialStone: {Density: 1.9, MaxHealth: 240},
			MaterialGlass: {Density: 0.6, MaxHealth: 75},
		},
		DefaultBird:     BirdRed,
		DefaultMaterial: MaterialProfile{Density: 1.0, MaxHealth: 100},

		ExplosionTTL:    0.32,
		CompletionBonus: 5000,
		MaxStep:         1.0 / 30.0,
	}
}
