// Package config provides YAML-based configuration for the slingshot game:
// world constants, physics tuning, bird and material tables, the aiming
// gesture and difficulty presets.
package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/slingshot/internal/sim"
)

// SlingshotConfig contains all configuration for the game.
type SlingshotConfig struct {
	World           WorldConfig               `yaml:"world"`
	Slingshot       AnchorConfig              `yaml:"slingshot"`
	Birds           map[string]BirdConfig     `yaml:"birds"`
	Materials       map[string]MaterialConfig `yaml:"materials"`
	DefaultMaterial MaterialConfig            `yaml:"default_material"`
	Effects         EffectsConfig             `yaml:"effects"`
	Scoring         ScoringConfig             `yaml:"scoring"`
	Aim             AimConfig                 `yaml:"aim"`
	Difficulty      DifficultyConfig          `yaml:"difficulty"`
}

// WorldConfig defines the world bounds and integration settings.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FloorOffset   float64 `yaml:"floor_offset"` // Floor sits this far above the bottom edge
	Gravity       float64 `yaml:"gravity"`
	MaxStep       float64 `yaml:"max_step"` // Longest simulated step in seconds
	BlockContacts bool    `yaml:"block_contacts"`
}

// AnchorConfig defines the slingshot and the waiting bird queue.
type AnchorConfig struct {
	X            float64 `yaml:"x"`
	Lift         float64 `yaml:"lift"` // Anchor height above the floor
	Radius       float64 `yaml:"radius"`
	QueueSpacing float64 `yaml:"queue_spacing"`
	QueueDrop    float64 `yaml:"queue_drop"`
}

// BirdConfig defines a bird profile.
type BirdConfig struct {
	Radius float64 `yaml:"radius"`
	Power  float64 `yaml:"power"`
	Color  string  `yaml:"color"`
}

// MaterialConfig defines a block material.
type MaterialConfig struct {
	Density   float64 `yaml:"density"`
	MaxHealth float64 `yaml:"max_health"`
}

// EffectsConfig defines visual effect lifetimes.
type EffectsConfig struct {
	ExplosionTTL float64 `yaml:"explosion_ttl"`
}

// ScoringConfig defines round scoring.
type ScoringConfig struct {
	CompletionBonus int `yaml:"completion_bonus"`
}

// AimConfig defines the launch gesture: the drag point is pulled away from
// the anchor and the launch velocity is the opposite vector times Scale.
type AimConfig struct {
	MaxDrag float64 `yaml:"max_drag"` // Longest pull from the anchor
	Scale   float64 `yaml:"scale"`
	MaxVX   float64 `yaml:"max_vx"`
	MaxVY   float64 `yaml:"max_vy"`
	Step    float64 `yaml:"step"` // Drag distance per key press
}

// Tuning converts the configuration into simulation tuning.
// Unknown bird or material names are an error; bird types missing from the
// table fall back to red's profile.
func (c SlingshotConfig) Tuning() (sim.Tuning, error) {
	if err := c.Validate(); err != nil {
		return sim.Tuning{}, err
	}

	t := sim.Tuning{
		Width:       c.World.Width,
		Height:      c.World.Height,
		FloorOffset: c.World.FloorOffset,
		Gravity:     c.World.Gravity,

		SlingshotX:      c.Slingshot.X,
		SlingshotLift:   c.Slingshot.Lift,
		SlingshotRadius: c.Slingshot.Radius,
		QueueSpacing:    c.Slingshot.QueueSpacing,
		QueueDrop:       c.Slingshot.QueueDrop,

		Birds:     make(map[sim.BirdType]sim.BirdProfile, len(c.Birds)),
		Materials: make(map[sim.Material]sim.MaterialProfile, len(c.Materials)),

		DefaultBird: sim.BirdRed,
		DefaultMaterial: sim.MaterialProfile{
			Density:   c.DefaultMaterial.Density,
			MaxHealth: c.DefaultMaterial.MaxHealth,
		},

		ExplosionTTL:    c.Effects.ExplosionTTL,
		CompletionBonus: c.Scoring.CompletionBonus,
		MaxStep:         c.World.MaxStep,
		BlockContacts:   c.World.BlockContacts,
	}

	for _, name := range sortedKeys(c.Birds) {
		bt, ok := sim.ParseBirdType(name)
		if !ok {
			return sim.Tuning{}, fmt.Errorf("config: unknown bird %q", name)
		}
		b := c.Birds[name]
		t.Birds[bt] = sim.BirdProfile{Radius: b.Radius, Power: b.Power, Color: b.Color}
	}
	for _, name := range sortedKeys(c.Materials) {
		m, ok := sim.ParseMaterial(name)
		if !ok {
			return sim.Tuning{}, fmt.Errorf("config: unknown material %q", name)
		}
		mc := c.Materials[name]
		t.Materials[m] = sim.MaterialProfile{Density: mc.Density, MaxHealth: mc.MaxHealth}
	}
	if _, ok := t.Birds[sim.BirdRed]; !ok {
		return sim.Tuning{}, fmt.Errorf("config: birds: red profile is required")
	}

	return t, nil
}

// Validate checks the configuration for values the simulation cannot use.
func (c SlingshotConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world: size %vx%v must be positive", c.World.Width, c.World.Height)
	case c.World.FloorOffset < 0 || c.World.FloorOffset >= c.World.Height:
		return fmt.Errorf("config: world: floor_offset %v out of range", c.World.FloorOffset)
	case c.World.MaxStep <= 0:
		return fmt.Errorf("config: world: max_step must be positive")
	case c.Aim.MaxDrag <= 0 || c.Aim.Scale <= 0 || c.Aim.Step <= 0:
		return fmt.Errorf("config: aim: max_drag, scale and step must be positive")
	}
	for name, b := range c.Birds {
		if b.Radius <= 0 {
			return fmt.Errorf("config: birds: %s: radius must be positive", name)
		}
	}
	for name, m := range c.Materials {
		if m.Density <= 0 || m.MaxHealth <= 0 {
			return fmt.Errorf("config: materials: %s: density and max_health must be positive", name)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
