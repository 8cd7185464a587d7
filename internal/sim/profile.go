// Package sim implements the slingshot demolition simulation: birds launched
// from a slingshot strike destructible blocks and pigs. The package is pure
// logic with a fixed-step update; it does no I/O and no rendering.
package sim

import "strings"

// BirdType identifies a projectile variant and its one-shot ability.
type BirdType int

const (
	BirdRed    BirdType = iota // No ability
	BirdBlue                   // Splits into two extra birds
	BirdYellow                 // Speed boost along the flight direction
	BirdBlack                  // Explodes and disappears
	BirdWhite                  // Drops an egg that explodes below it
)

var birdNames = map[BirdType]string{
	BirdRed:    "red",
	BirdBlue:   "blue",
	BirdYellow: "yellow",
	BirdBlack:  "black",
	BirdWhite:  "white",
}

// String returns the lowercase name of the bird type.
func (t BirdType) String() string {
	if name, ok := birdNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseBirdType maps a name to a BirdType.
// Unknown names resolve to BirdRed and ok=false.
func ParseBirdType(name string) (BirdType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range birdNames {
		if n == name {
			return t, true
		}
	}
	return BirdRed, false
}

// BirdProfile holds the fixed physical constants of a bird type.
type BirdProfile struct {
	Radius float64
	Power  float64
	Color  string
}

// Material identifies a block material.
type Material int

const (
	MaterialWood  Material = iota // Light
	MaterialStone                 // Dense
	MaterialGlass                 // Fragile

	// MaterialUnknown has no profile and uses Tuning.DefaultMaterial.
	MaterialUnknown Material = -1
)

var materialNames = map[Material]string{
	MaterialWood:  "wood",
	MaterialStone: "stone",
	MaterialGlass: "glass",
}

// String returns the lowercase name of the material.
func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMaterial maps a name to a Material.
// Unknown names resolve to MaterialUnknown and ok=false.
func ParseMaterial(name string) (Material, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range materialNames {
		if n == name {
			return m, true
		}
	}
	return MaterialUnknown, false
}

// MaterialProfile holds the density and starting health of a material.
type MaterialProfile struct {
	Density   float64
	MaxHealth float64
}
