package metrics

import (
	"github.com/san-kum/lifegif/internal/life"
)

// Activity is the mean fraction of cells that changed between consecutive
// observed generations.
type Activity struct {
	name    string
	prev    *life.Grid
	sum     float64
	samples int
}

func NewActivity() *Activity {
	return &Activity{
		name: "activity",
	}
}

func (a *Activity) Name() string {
	return a.name
}

func (a *Activity) OnStep(gen int, g *life.Grid) {
	if a.prev != nil {
		w, h := g.Dimensions()
		if cells := w * h; cells > 0 {
			a.sum += float64(g.Diff(a.prev)) / float64(cells)
			a.samples++
		}
	}
	a.prev = g.Clone()
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *Activity) Reset() {
	a.prev = nil
	a.sum = 0
	a.samples = 0
}
