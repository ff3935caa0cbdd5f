package types

import (
	"errors"
	"fmt"
)

// Input errors: user-correctable, reported verbatim, never retried.
var (
	ErrMissingText      = errors.New("missing text")
	ErrTooShort         = errors.New("text too short")
	ErrTooLong          = errors.New("text too long")
	ErrEmptyAfterClean  = errors.New("no meaningful content after cleaning")
	ErrUnsupportedInput = errors.New("unsupported input kind")
)

// Pipeline/model errors: server-side faults, surfaced distinctly from
// input errors. ErrModelNotLoaded also blocks the health check.
var (
	ErrModelNotLoaded = errors.New("model artifact not loaded")
)

// ExtractionError wraps a failure to turn a source reference into
// text: network failure, non-2xx status, unparseable document.
type ExtractionError struct {
	Source string // URL or filename
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Source, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// DimensionalityError reports a feature-vector size that does not
// match what the classifier expects. Always an internal fault.
type DimensionalityError struct {
	Got  int
	Want int
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("feature vector has %d dimensions, classifier expects %d", e.Got, e.Want)
}

// IsInputError reports whether err is user-correctable rather than a
// server-side fault.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingText) ||
		errors.Is(err, ErrTooShort) ||
		errors.Is(err, ErrTooLong) ||
		errors.Is(err, ErrEmptyAfterClean) ||
		errors.Is(err, ErrUnsupportedInput)
}
