package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/san-kum/lifegif/internal/life"
	"github.com/san-kum/lifegif/internal/recorder"
	"github.com/san-kum/lifegif/internal/render"
)

var ErrNotSetup = errors.New("experiment: not set up")

type Config struct {
	Generations int
	// Record captures one frame per generation, the initial grid included.
	Record       bool
	FrameDelayMs uint16
	Logger       logr.Logger
}

type Result struct {
	// Population holds the live count of the initial grid followed by one
	// entry per generation.
	Population []int
	Final      *life.Grid
	Metrics    map[string]float64
	GIF        []byte
	Steps      int
}

// seeder is implemented by metrics that need the starting grid.
type seeder interface {
	Seed(g *life.Grid)
}

type Experiment struct {
	cfg      Config
	engine   *life.Engine
	metrics  []life.Metric
	recorder *recorder.Recorder
	raster   *render.Rasterizer
	log      logr.Logger
}

func New(cfg Config) *Experiment {
	log := cfg.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Experiment{
		cfg: cfg,
		log: log.WithName("experiment"),
	}
}

// Setup attaches the engine and metrics. rec and raster may be nil when the
// experiment does not record.
func (e *Experiment) Setup(engine *life.Engine, metrics []life.Metric, rec *recorder.Recorder, raster *render.Rasterizer) error {
	if engine == nil {
		return fmt.Errorf("%w: nil engine", ErrNotSetup)
	}
	if e.cfg.Record && (rec == nil || raster == nil) {
		return fmt.Errorf("%w: recording needs a recorder and a rasterizer", ErrNotSetup)
	}
	e.engine = engine
	e.metrics = metrics
	e.recorder = rec
	e.raster = raster
	for _, m := range metrics {
		engine.AddObserver(m)
	}
	return nil
}

// Engine returns the engine for adding observers.
func (e *Experiment) Engine() *life.Engine {
	return e.engine
}

// Run advances the configured number of generations. Cancellation is
// checked between generations; a cancelled run returns the partial result
// and discards the recording.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.engine == nil {
		return nil, ErrNotSetup
	}
	if e.cfg.Generations < 0 {
		return nil, fmt.Errorf("generations must be non-negative, got %d", e.cfg.Generations)
	}

	result := &Result{
		Population: make([]int, 0, e.cfg.Generations+1),
		Metrics:    make(map[string]float64),
	}

	start := e.engine.State()
	for _, m := range e.metrics {
		m.Reset()
		if s, ok := m.(seeder); ok {
			s.Seed(start)
		}
	}
	result.Population = append(result.Population, start.LiveCount())

	if e.cfg.Record {
		w, h := e.raster.FrameSize(start)
		if err := e.recorder.Start(w, h, e.cfg.FrameDelayMs); err != nil {
			return nil, err
		}
		if err := e.recorder.Capture(e.raster.Render(start)); err != nil {
			return nil, err
		}
	}

	e.log.Info("running", "generations", e.cfg.Generations, "record", e.cfg.Record)

	for i := 0; i < e.cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			e.finish(result)
			e.abandonRecording()
			return result, ctx.Err()
		default:
		}

		e.engine.Step()
		result.Steps++
		result.Population = append(result.Population, e.engine.LiveCount())

		if e.cfg.Record {
			if err := e.recorder.Capture(e.raster.Render(e.engine.State())); err != nil {
				return nil, err
			}
		}
	}

	e.finish(result)

	if e.cfg.Record {
		gif, err := e.recorder.Stop()
		if err != nil {
			return result, fmt.Errorf("stop recording: %w", err)
		}
		result.GIF = gif
	}

	e.log.Info("finished", "steps", result.Steps, "live", result.Final.LiveCount(), "gifBytes", len(result.GIF))
	return result, nil
}

func (e *Experiment) finish(result *Result) {
	result.Final = e.engine.State()
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (e *Experiment) abandonRecording() {
	if e.recorder == nil || !e.recorder.IsRecording() {
		return
	}
	// Stop encodes what was captured; the bytes are dropped.
	if _, err := e.recorder.Stop(); err != nil {
		e.log.Error(err, "discarding recording")
	}
}
