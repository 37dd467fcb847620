package recorder

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a frame whose length is not width*height*3.
	ErrDimensionMismatch = errors.New("recorder: frame size does not match dimensions")

	// ErrInvalidDimensions indicates a width or height a GIF canvas cannot hold.
	ErrInvalidDimensions = errors.New("recorder: invalid canvas dimensions")

	// ErrInvalidRecordingState indicates Start while recording, or Capture/Stop while idle.
	ErrInvalidRecordingState = errors.New("recorder: invalid recording state")

	// ErrEmptyCapture indicates Stop was called before any frame was captured.
	ErrEmptyCapture = errors.New("recorder: no frames captured")

	// ErrEncodingFailure indicates the GIF encoder failed.
	ErrEncodingFailure = errors.New("recorder: encoding failure")
)

// EncodeError wraps an encoder failure with the size of the batch being written.
// It matches both ErrEncodingFailure and the underlying cause.
type EncodeError struct {
	Frames  int
	Wrapped error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%v: writing %d frames: %v", ErrEncodingFailure, e.Frames, e.Wrapped)
}

func (e *EncodeError) Unwrap() []error {
	return []error{ErrEncodingFailure, e.Wrapped}
}
