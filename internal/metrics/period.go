package metrics

import (
	"hash/fnv"

	"github.com/san-kum/lifegif/internal/life"
)

// Period detects the first generation that repeats an earlier one and
// reports the cycle length. A still life has period 1; 0 means no repeat was
// seen yet.
type Period struct {
	name   string
	seen   map[uint64]int
	period int
}

func NewPeriod() *Period {
	return &Period{
		name: "period",
		seen: make(map[uint64]int),
	}
}

func (p *Period) Name() string {
	return p.name
}

func (p *Period) OnStep(gen int, g *life.Grid) {
	if p.period != 0 {
		return
	}
	key := fingerprint(g)
	if first, ok := p.seen[key]; ok {
		p.period = gen - first
		return
	}
	p.seen[key] = gen
}

// Seed records the starting grid as generation 0.
func (p *Period) Seed(g *life.Grid) {
	p.OnStep(0, g)
}

func (p *Period) Value() float64 {
	return float64(p.period)
}

func (p *Period) Reset() {
	p.seen = make(map[uint64]int)
	p.period = 0
}

func fingerprint(g *life.Grid) uint64 {
	h := fnv.New64a()
	w, ht := g.Dimensions()
	h.Write([]byte{byte(w), byte(w >> 8), byte(ht), byte(ht >> 8)})
	h.Write(g.Cells())
	return h.Sum64()
}
