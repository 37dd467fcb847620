package recorder

import (
	"bytes"
	"fmt"

	"github.com/go-logr/logr"
)

const (
	// DefaultFrameDelay is the delay reported before the first Start, in milliseconds.
	DefaultFrameDelay uint16 = 100

	// maxCanvas is the largest GIF logical screen dimension.
	maxCanvas = 1<<16 - 1
)

type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Recorder accumulates RGB frames between Start and Stop.
type Recorder struct {
	state         State
	width, height int
	frameDelayMs  uint16
	frames        [][]byte
	log           logr.Logger
}

func New(log logr.Logger) *Recorder {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Recorder{
		state:        Idle,
		frameDelayMs: DefaultFrameDelay,
		log:          log.WithName("recorder"),
	}
}

// Start begins a session of width x height frames shown for frameDelayMs each.
func (r *Recorder) Start(width, height int, frameDelayMs uint16) error {
	if r.state == Recording {
		return fmt.Errorf("%w: already recording", ErrInvalidRecordingState)
	}
	if width <= 0 || height <= 0 || width > maxCanvas || height > maxCanvas {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	r.width = width
	r.height = height
	r.frameDelayMs = frameDelayMs
	r.frames = nil
	r.state = Recording

	r.log.Info("started recording", "width", width, "height", height, "frameDelayMs", frameDelayMs)
	return nil
}

// Capture appends a copy of one RGB frame, 3 bytes per pixel, row-major.
func (r *Recorder) Capture(rgb []byte) error {
	if r.state != Recording {
		return fmt.Errorf("%w: not currently recording", ErrInvalidRecordingState)
	}

	expected := r.width * r.height * 3
	if len(rgb) != expected {
		return fmt.Errorf("%w: expected %dx%dx3 = %d bytes, got %d",
			ErrDimensionMismatch, r.width, r.height, expected, len(rgb))
	}

	frame := make([]byte, len(rgb))
	copy(frame, rgb)
	r.frames = append(r.frames, frame)

	if l := r.log.V(2); l.Enabled() {
		l.Info("captured frame", "frame", len(r.frames))
	}
	return nil
}

// Stop encodes the captured frames and returns to Idle. On an encoding
// failure the session stays in Recording with its frames intact.
func (r *Recorder) Stop() ([]byte, error) {
	if r.state != Recording {
		return nil, fmt.Errorf("%w: not currently recording", ErrInvalidRecordingState)
	}
	if len(r.frames) == 0 {
		return nil, ErrEmptyCapture
	}

	var buf bytes.Buffer
	if err := encode(&buf, r.width, r.height, DelayCentiseconds(r.frameDelayMs), r.frames); err != nil {
		r.log.Error(err, "encoding failed", "frames", len(r.frames))
		return nil, err
	}

	r.log.Info("stopped recording", "bytes", buf.Len(), "frames", len(r.frames))

	r.frames = nil
	r.state = Idle
	return buf.Bytes(), nil
}

func (r *Recorder) IsRecording() bool { return r.state == Recording }
func (r *Recorder) State() State      { return r.state }

// FrameDelay returns the per-frame delay in milliseconds.
func (r *Recorder) FrameDelay() uint16 { return r.frameDelayMs }

func (r *Recorder) FrameCount() int { return len(r.frames) }

// Dimensions returns the canvas size declared by the last Start.
func (r *Recorder) Dimensions() (int, int) { return r.width, r.height }

// DelayCentiseconds converts milliseconds to GIF delay units, rounding half up
// so short delays do not truncate to zero.
func DelayCentiseconds(ms uint16) int {
	return (int(ms) + 5) / 10
}
