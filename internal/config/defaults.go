package config

import (
	_ "embed"
)

//go:embed defaults/slingshot.yaml
var defaultSlingshotYAML []byte

// DefaultSlingshotConfig returns the default configuration.
func DefaultSlingshotConfig() SlingshotConfig {
	return SlingshotConfig{
		World: WorldConfig{
			Width:         1280,
			Height:        720,
			FloorOffset:   70,
			Gravity:       620,
			MaxStep:       1.0 / 30.0,
			BlockContacts: false,
		},
		Slingshot: AnchorConfig{
			X:            160,
			Lift:         18,
			Radius:       16,
			QueueSpacing: 44,
			QueueDrop:    4,
		},
		Birds: map[string]BirdConfig{
			"red":    {Radius: 18, Power: 1.0, Color: "#d62d2d"},
			"blue":   {Radius: 12, Power: 0.78, Color: "#3a7bff"},
			"yellow": {Radius: 14, Power: 0.84, Color: "#f5cd1f"},
			"black":  {Radius: 20, Power: 1.45, Color: "#2e2f35"},
			"white":  {Radius: 16, Power: 0.9, Color: "#f1f1f1"},
		},
		Materials: map[string]MaterialConfig{
			"wood":  {Density: 1.0, MaxHealth: 130},
			"stone": {Density: 1.9, MaxHealth: 240},
			"glass": {Density: 0.6, MaxHealth: 75},
		},
		DefaultMaterial: MaterialConfig{Density: 1.0, MaxHealth: 100},
		Effects:         EffectsConfig{ExplosionTTL: 0.32},
		Scoring:         ScoringConfig{CompletionBonus: 5000},
		Aim: AimConfig{
			MaxDrag: 130,
			Scale:   5.2,
			MaxVX:   620,
			MaxVY:   700,
			Step:    10,
		},
		Difficulty: DifficultyConfig{
			PowerScale:   1.0,
			PreviewSteps: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSlingshotYAML
}
