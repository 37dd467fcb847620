package life

import "errors"

// Domain errors for grid construction and parsing.
var (
	// ErrDimensionMismatch indicates a cell buffer whose length is not width*height.
	ErrDimensionMismatch = errors.New("life: data length does not match dimensions")

	// ErrInvalidDimensions indicates a width or height outside the supported range.
	ErrInvalidDimensions = errors.New("life: invalid grid dimensions")

	// ErrInvalidText indicates text grid input that is empty or has characters other than 0, 1 and whitespace.
	ErrInvalidText = errors.New("life: invalid text grid")
)
