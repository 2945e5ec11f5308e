package line

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying which grammar stage rejected the input.
// Every error returned by the parser matches exactly one of these via
// errors.Is.
var (
	// ErrEmptyInput indicates the raw line was empty, or contained no
	// command once tags and prefix were consumed.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformedTags indicates a @-tags block with an empty key or with
	// no terminating space.
	ErrMalformedTags = errors.New("malformed tags")

	// ErrMalformedPrefix indicates a ':' prefix with nothing after it.
	ErrMalformedPrefix = errors.New("malformed prefix")

	// ErrInvalidCommand indicates a command token that is neither
	// alphabetic nor a 3-digit numeric code.
	ErrInvalidCommand = errors.New("invalid command")
)

// ParseError describes why a line was rejected. Err is always one of the
// sentinel errors above; Input carries the offending substring so callers
// can produce a diagnostic without re-scanning the line.
type ParseError struct {
	Err    error
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s: %q", e.Err, e.Reason, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Reason)
}

// Unwrap returns the sentinel error, enabling errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
