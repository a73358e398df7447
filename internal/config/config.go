// Package config provides YAML-based configuration loading for the
// pathgrid engine and its hosts.
package config

// Config is the full engine configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Engine EngineConfig `yaml:"engine"`
}

// GridConfig controls world generation.
type GridConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   uint64 `yaml:"seed"` // 0 means the host picks one (e.g. from time)
}

// EngineConfig controls timing and input behavior.
type EngineConfig struct {
	RenderIntervalMs int  `yaml:"render_interval_ms"`
	FollowPointer    bool `yaml:"follow_pointer"`
	Debug            bool `yaml:"debug"`
}
