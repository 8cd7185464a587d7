package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/slingshot/internal/sim"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Deck   string      `yaml:"deck,omitempty"`
	Birds  []string    `yaml:"birds,omitempty"` // Overrides deck when set
	Pigs   []YAMLPig   `yaml:"pigs"`
	Blocks []YAMLBlock `yaml:"blocks"`
}

// YAMLPig places a pig by its center. A zero radius means the default.
type YAMLPig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius,omitempty"`
}

// YAMLBlock places a block by its top-left corner.
type YAMLBlock struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Material string  `yaml:"material"`
	Angle    float64 `yaml:"angle,omitempty"`
}

// ErrMissingID is returned for level files without an id.
var ErrMissingID = errors.New("level has no id")

// ParseYAML parses and validates a YAML level file. Unknown deck names fall
// back to the balanced deck, unknown birds to red and unknown materials to
// the default material profile.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, ErrMissingID
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	deckName := yl.Deck
	if deckName == "" {
		deckName = DefaultDeck
	}

	lvl := Level{
		Level:    sim.Level{ID: yl.ID, Name: name},
		DeckName: deckName,
	}

	if len(yl.Birds) > 0 {
		lvl.DeckName = "custom"
		for _, b := range yl.Birds {
			bt, _ := sim.ParseBirdType(b)
			lvl.Deck = append(lvl.Deck, bt)
		}
	} else {
		lvl.Deck, _ = Deck(deckName)
	}

	for i, p := range yl.Pigs {
		if p.Radius < 0 {
			return Level{}, fmt.Errorf("pig %d: negative radius %v", i, p.Radius)
		}
		lvl.Pigs = append(lvl.Pigs, sim.PigPlacement{X: p.X, Y: p.Y, Radius: p.Radius})
	}

	for i, b := range yl.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return Level{}, fmt.Errorf("block %d: size %vx%v must be positive", i, b.W, b.H)
		}
		m, _ := sim.ParseMaterial(b.Material)
		lvl.Blocks = append(lvl.Blocks, sim.BlockPlacement{
			X: b.X, Y: b.Y, W: b.W, H: b.H,
			Material: m,
			Angle:    b.Angle,
		})
	}

	return lvl, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
