package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
grid:
  width: 64
  height: 32
  seed: 9
engine:
  render_interval_ms: 16
  follow_pointer: false
  debug: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 64 || cfg.Grid.Height != 32 {
		t.Errorf("grid = %dx%d, expected 64x32", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.Seed != 9 {
		t.Errorf("seed = %d, expected 9", cfg.Grid.Seed)
	}
	if cfg.Engine.RenderIntervalMs != 16 {
		t.Errorf("render interval = %d, expected 16", cfg.Engine.RenderIntervalMs)
	}
	if cfg.Engine.FollowPointer {
		t.Error("follow_pointer should be false")
	}
	if !cfg.Engine.Debug {
		t.Error("debug should be true")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Whatever source wins the cascade, the result must be usable.
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		t.Errorf("grid = %dx%d, expected positive dimensions", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Engine.RenderIntervalMs < 0 {
		t.Errorf("render interval = %d, expected non-negative", cfg.Engine.RenderIntervalMs)
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	def := Default()
	if def.Grid.Width != 40 || def.Grid.Height != 24 {
		t.Errorf("default grid = %dx%d, expected 40x24", def.Grid.Width, def.Grid.Height)
	}
	if !def.Engine.FollowPointer {
		t.Error("default follow_pointer should be true")
	}
}
