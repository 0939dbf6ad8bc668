package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFaces is returned when a font collection holds no faces.
	ErrNoFaces = errors.New("text: font collection has no faces")

	// ErrInvalidSize is returned when a face size is not a positive number.
	ErrInvalidSize = errors.New("text: face size must be positive")
)

// CandidateError records why a font candidate was rejected by Resolve.
type CandidateError struct {
	Path string
	Err  error
}

func (e *CandidateError) Error() string {
	return fmt.Sprintf("text: font candidate %s: %v", e.Path, e.Err)
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}
