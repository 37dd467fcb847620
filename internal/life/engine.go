package life

import (
	"github.com/go-logr/logr"
)

// Observer is notified after every forward step.
type Observer interface {
	OnStep(generation int, g *Grid)
}

// Metric observes generations and summarizes them into one value.
type Metric interface {
	Observer
	Name() string
	Value() float64
	Reset()
}

type Config struct {
	// Workers bounds the goroutines used per step. Zero means DefaultWorkers.
	Workers int
	// HistoryLimit caps the undo history. Zero keeps every snapshot.
	HistoryLimit int
	Logger       logr.Logger
}

func DefaultConfig() Config {
	return Config{
		Workers: DefaultWorkers(),
		Logger:  logr.Discard(),
	}
}

// Engine owns the current grid, the initial grid used by Reset and the undo
// history.
type Engine struct {
	current    *Grid
	initial    *Grid
	history    *History
	workers    int
	generation int
	log        logr.Logger
	observers  []Observer
}

// NewEngine starts from a copy of initial with an empty history.
func NewEngine(initial *Grid, cfg Config) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers()
	}
	if cfg.Logger.GetSink() == nil {
		cfg.Logger = logr.Discard()
	}

	e := &Engine{
		current: initial.Clone(),
		initial: initial.Clone(),
		history: NewHistory(cfg.HistoryLimit),
		workers: cfg.Workers,
		log:     cfg.Logger.WithName("engine"),
	}
	e.log.Info("created engine", "width", initial.width, "height", initial.height,
		"workers", e.workers, "historyLimit", e.history.Limit())
	return e
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// State returns a snapshot of the current grid.
func (e *Engine) State() *Grid { return e.current.Clone() }

// Initial returns a snapshot of the grid Reset restores.
func (e *Engine) Initial() *Grid { return e.initial.Clone() }

func (e *Engine) Dimensions() (int, int) { return e.current.Dimensions() }
func (e *Engine) Cell(row, col int) bool { return e.current.Cell(row, col) }
func (e *Engine) LiveCount() int         { return e.current.LiveCount() }
func (e *Engine) HistoryLen() int        { return e.history.Len() }

// Generation counts forward steps since the last Reset or Load, minus steps
// taken back.
func (e *Engine) Generation() int { return e.generation }

// Step pushes the current grid onto the history and advances one generation.
func (e *Engine) Step() {
	e.history.Push(e.current)
	e.current = Next(e.current, e.workers)
	e.generation++

	if l := e.log.V(2); l.Enabled() {
		l.Info("step", "generation", e.generation, "live", e.current.LiveCount())
	}
	for _, o := range e.observers {
		o.OnStep(e.generation, e.current)
	}
}

// StepBack restores the most recent history entry. It reports false and
// leaves the grid untouched when the history is empty.
func (e *Engine) StepBack() bool {
	prev, ok := e.history.Pop()
	if !ok {
		e.log.V(1).Info("step back ignored, history empty")
		return false
	}
	e.current = prev
	e.generation--
	return true
}

// ToggleCell flips (row, col). Out-of-range coordinates are ignored.
func (e *Engine) ToggleCell(row, col int) {
	if !e.current.Toggle(row, col) {
		e.log.V(1).Info("toggle ignored, out of range", "row", row, "col", col)
	}
}

// SetCell writes (row, col). Out-of-range coordinates are ignored.
func (e *Engine) SetCell(row, col int, alive bool) {
	e.current.Set(row, col, alive)
}

// Clear kills every cell of the current grid. History is kept.
func (e *Engine) Clear() {
	e.current = NewGrid(e.current.width, e.current.height)
	e.log.V(1).Info("cleared grid")
}

// Reset restores the initial grid and discards the history.
func (e *Engine) Reset() {
	e.current = e.initial.Clone()
	e.history.Clear()
	e.generation = 0
	e.log.V(1).Info("reset to initial grid")
}

// Load replaces both the current and the initial grid, possibly with new
// dimensions, and discards the history.
func (e *Engine) Load(g *Grid) {
	e.current = g.Clone()
	e.initial = g.Clone()
	e.history.Clear()
	e.generation = 0
	e.log.Info("loaded grid", "width", g.width, "height", g.height)
}
