package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name in every search location.
const FileName = "slingshot.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.slingshot/configs/slingshot.yaml -> ./configs/slingshot.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes.
func Load(customPath string) (SlingshotConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SlingshotConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SlingshotConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSlingshotYAML)
	if err != nil {
		return DefaultSlingshotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and validates the result.
func Parse(data []byte) (SlingshotConfig, error) {
	cfg := DefaultSlingshotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlingshotConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SlingshotConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slingshot", "configs", filename)
}
