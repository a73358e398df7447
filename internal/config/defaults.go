package config

import (
	_ "embed"
)

//go:embed defaults/pathgrid.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 24,
			Seed:   0,
		},
		Engine: EngineConfig{
			RenderIntervalMs: 33,
			FollowPointer:    true,
			Debug:            false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
