package ircparser

import "github.com/ircparser/ircparser-go/pkg/ircparser/line"

// Re-exported types from the line package, so most callers only need this
// import.
type (
	// Line is a single parsed IRC message.
	Line = line.Line

	// Source is a decomposed message prefix.
	Source = line.Source

	// ParseError describes why a line was rejected.
	ParseError = line.ParseError
)

// Sentinel errors identifying which grammar stage rejected the input.
var (
	ErrEmptyInput      = line.ErrEmptyInput
	ErrMalformedTags   = line.ErrMalformedTags
	ErrMalformedPrefix = line.ErrMalformedPrefix
	ErrInvalidCommand  = line.ErrInvalidCommand
)

// ParseSource decomposes a raw prefix of the form "nick!user@host",
// "nick@host", or a bare origin. See line.ParseSource.
func ParseSource(s string) Source {
	return line.ParseSource(s)
}
