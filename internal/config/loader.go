package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the engine configuration.
// Search order: customPath -> ~/.pathgrid/config.yaml -> ./configs/pathgrid.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Custom path is authoritative: failures there are errors.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/pathgrid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pathgrid", filename)
}
