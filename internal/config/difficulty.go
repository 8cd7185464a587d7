package config

// DifficultyConfig scales the launch gesture and the aiming aid.
type DifficultyConfig struct {
	PowerScale   float64 `yaml:"power_scale"`   // Multiplies the launch velocity
	PreviewSteps int     `yaml:"preview_steps"` // Trajectory dots drawn while aiming; 0 disables
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values resolve to normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}

// IsFixedPreset returns true if the preset keeps the loaded values as-is.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SlingshotConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.PowerScale = 1.15
		cfg.Difficulty.PreviewSteps = 24
	case DifficultyNormal:
		cfg.Difficulty.PowerScale = 1.0
		cfg.Difficulty.PreviewSteps = 10
	case DifficultyHard:
		cfg.Difficulty.PowerScale = 0.9
		cfg.Difficulty.PreviewSteps = 0
	case DifficultyFixed:
		// Keep whatever the config file says.
	}
}
