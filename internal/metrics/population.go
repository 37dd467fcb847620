package metrics

import (
	"github.com/san-kum/lifegif/internal/life"
)

// Population reports the live cell count of the last observed generation.
type Population struct {
	name string
	live int
}

func NewPopulation() *Population {
	return &Population{name: "population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) OnStep(gen int, g *life.Grid) {
	p.live = g.LiveCount()
}

func (p *Population) Value() float64 { return float64(p.live) }

func (p *Population) Reset() { p.live = 0 }

// PeakPopulation reports the largest live cell count observed.
type PeakPopulation struct {
	name string
	peak int
}

func NewPeakPopulation() *PeakPopulation {
	return &PeakPopulation{name: "peak_population"}
}

func (p *PeakPopulation) Name() string { return p.name }

func (p *PeakPopulation) OnStep(gen int, g *life.Grid) {
	if n := g.LiveCount(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }

func (p *PeakPopulation) Reset() { p.peak = 0 }
