package backdrop

import "errors"

// Sentinel errors for the backdrop package.
var (
	// ErrInvalidSize is returned when a surface dimension is not positive.
	ErrInvalidSize = errors.New("backdrop: width and height must be positive")

	// ErrClosed is returned when drawing on a closed Context.
	ErrClosed = errors.New("backdrop: context is closed")
)
