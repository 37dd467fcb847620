package config

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pattern != "glider" {
		t.Errorf("expected pattern glider, got %s", cfg.Pattern)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("dimensions should be positive")
	}
	if cfg.Record.DelayMs != DefaultDelayMs {
		t.Errorf("expected delay %d, got %d", DefaultDelayMs, cfg.Record.DelayMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")

	cfg := DefaultConfig()
	cfg.Pattern = "pulsar"
	cfg.Width = 19
	cfg.Height = 19
	cfg.HistoryLimit = 50
	cfg.Record.Enabled = true
	cfg.Record.Theme = "ocean"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"too tall", func(c *Config) { c.Height = MaxDimension + 1 }, false},
		{"file ignores size", func(c *Config) { c.File = "grid.txt"; c.Width = 0 }, true},
		{"negative generations", func(c *Config) { c.Generations = -1 }, false},
		{"negative workers", func(c *Config) { c.Workers = -2 }, false},
		{"negative history", func(c *Config) { c.HistoryLimit = -1 }, false},
		{"negative padding", func(c *Config) { c.Padding = -1 }, false},
		{"density above one", func(c *Config) { c.Density = 1.5 }, false},
		{"delay too large", func(c *Config) { c.Record.DelayMs = 70000 }, false},
		{"zero cell size", func(c *Config) { c.Record.CellSize = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pulsar")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 19 {
		t.Errorf("expected width 19, got %d", cfg.Width)
	}

	cfg.Width = 1
	if Presets["pulsar"].Width != 19 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if !sort.StringsAreSorted(presets) {
		t.Errorf("presets not sorted: %v", presets)
	}
}
