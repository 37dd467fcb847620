package config

import "sort"

var Presets = map[string]*Config{
	"glider": {
		Pattern: "glider", Width: 32, Height: 32, Generations: 120,
		Record: RecordConfig{DelayMs: 80, CellSize: 10, Theme: "minimal", GridLines: true},
	},
	"gun": {
		Pattern: "gun", Width: 64, Height: 40, Generations: 300,
		Record: RecordConfig{DelayMs: 50, CellSize: 6, Theme: "cyberpunk"},
	},
	"pulsar": {
		Pattern: "pulsar", Width: 19, Height: 19, Generations: 30,
		Record: RecordConfig{DelayMs: 150, CellSize: 12, Theme: "ocean", GridLines: true},
	},
	"acorn": {
		Pattern: "acorn", Width: 160, Height: 120, Generations: 1000,
		Record: RecordConfig{DelayMs: 40, CellSize: 4, Theme: "retro"},
	},
	"soup": {
		Pattern: "random", Width: 96, Height: 64, Generations: 400, Seed: 42, Density: 0.35,
		Record: RecordConfig{DelayMs: 60, CellSize: 6, Theme: "sunset"},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
