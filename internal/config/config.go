package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPattern     = "glider"
	DefaultWidth       = 64
	DefaultHeight      = 48
	DefaultGenerations = 200
	DefaultDensity     = 0.3
	DefaultDelayMs     = 100
	DefaultCellSize    = 8
	DefaultTheme       = "minimal"

	// MaxDimension matches the grid size limit enforced by the engine.
	MaxDimension = 1000
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Pattern      string       `yaml:"pattern"`
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	Generations  int          `yaml:"generations"`
	Workers      int          `yaml:"workers"`
	HistoryLimit int          `yaml:"history_limit"`
	Seed         int64        `yaml:"seed"`
	Density      float64      `yaml:"density"`
	File         string       `yaml:"file,omitempty"`
	Padding      int          `yaml:"padding"`
	Record       RecordConfig `yaml:"record"`
}

type RecordConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Output    string `yaml:"output,omitempty"`
	DelayMs   int    `yaml:"delay_ms"`
	CellSize  int    `yaml:"cell_size"`
	Theme     string `yaml:"theme"`
	GridLines bool   `yaml:"grid_lines"`
}

func DefaultConfig() *Config {
	return &Config{
		Pattern:     DefaultPattern,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Generations: DefaultGenerations,
		Density:     DefaultDensity,
		Record: RecordConfig{
			DelayMs:  DefaultDelayMs,
			CellSize: DefaultCellSize,
			Theme:    DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges. A grid loaded from File may have any size the
// engine accepts, so Width and Height are only checked without one.
func (c *Config) Validate() error {
	if c.File == "" {
		if c.Width <= 0 || c.Height <= 0 || c.Width > MaxDimension || c.Height > MaxDimension {
			return fmt.Errorf("%w: grid %dx%d outside 1..%d", ErrInvalidConfig, c.Width, c.Height, MaxDimension)
		}
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: negative generations %d", ErrInvalidConfig, c.Generations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: negative history limit %d", ErrInvalidConfig, c.HistoryLimit)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: negative padding %d", ErrInvalidConfig, c.Padding)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: density %.2f outside [0,1]", ErrInvalidConfig, c.Density)
	}
	if c.Record.DelayMs < 0 || c.Record.DelayMs > 65535 {
		return fmt.Errorf("%w: frame delay %dms outside 0..65535", ErrInvalidConfig, c.Record.DelayMs)
	}
	if c.Record.CellSize < 1 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.Record.CellSize)
	}
	return nil
}
