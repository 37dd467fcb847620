package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/lifegif/internal/life"
)

func blinker() *life.Grid {
	g, _ := life.ParseText("00000\n00100\n00100\n00100\n00000\n")
	return g
}

func run(g *life.Grid, steps int, ms ...life.Metric) {
	eng := life.NewEngine(g, life.DefaultConfig())
	for _, m := range ms {
		eng.AddObserver(m)
	}
	for i := 0; i < steps; i++ {
		eng.Step()
	}
}

func TestPopulation(t *testing.T) {
	p := NewPopulation()
	peak := NewPeakPopulation()
	run(life.Glider(10, 10), 3, p, peak)

	if p.Value() != 5 {
		t.Errorf("population = %v, want 5", p.Value())
	}
	if peak.Value() != 5 {
		t.Errorf("peak = %v, want 5", peak.Value())
	}

	p.Reset()
	peak.Reset()
	if p.Value() != 0 || peak.Value() != 0 {
		t.Error("reset should zero the metrics")
	}
}

func TestActivityBlinker(t *testing.T) {
	a := NewActivity()
	run(blinker(), 4, a)

	// Each phase change kills two cells and births two: 4 of 25 cells.
	want := 4.0 / 25.0
	if math.Abs(a.Value()-want) > 1e-9 {
		t.Errorf("activity = %v, want %v", a.Value(), want)
	}
}

func TestActivityStillLife(t *testing.T) {
	g, _ := life.ParseText("0000\n0110\n0110\n0000\n")
	a := NewActivity()
	run(g, 3, a)
	if a.Value() != 0 {
		t.Errorf("block should have zero activity, got %v", a.Value())
	}
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		name string
		grid *life.Grid
		want float64
	}{
		{"blinker", blinker(), 2},
		{"block", mustParse("0000\n0110\n0110\n0000\n"), 1},
		{"dies out", mustParse("100\n000\n000\n"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPeriod()
			p.Seed(tt.grid)
			run(tt.grid, 6, p)
			if p.Value() != tt.want {
				t.Errorf("period = %v, want %v", p.Value(), tt.want)
			}
		})
	}
}

func TestPeriodGliderHasNone(t *testing.T) {
	p := NewPeriod()
	g := life.Glider(40, 40)
	p.Seed(g)
	run(g, 12, p)
	if p.Value() != 0 {
		t.Errorf("moving glider should not repeat, got %v", p.Value())
	}
}

func mustParse(s string) *life.Grid {
	g, err := life.ParseText(s)
	if err != nil {
		panic(err)
	}
	return g
}
