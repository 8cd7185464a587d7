package sim

// PigPlacement positions a pig by its center.
type PigPlacement struct {
	X, Y   float64
	Radius float64
}

// BlockPlacement positions a block by its top-left corner.
type BlockPlacement struct {
	X, Y     float64
	W, H     float64
	Material Material
	Angle    float64
}

// Level describes the starting layout of a round: the bird queue in launch
// order plus the pigs and blocks of the scene. Levels are validated by the
// content layer before a world is built from them.
type Level struct {
	ID     string
	Name   string
	Deck   []BirdType
	Pigs   []PigPlacement
	Blocks []BlockPlacement
}
