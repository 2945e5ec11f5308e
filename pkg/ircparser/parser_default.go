package ircparser

import (
	"context"

	"github.com/ircparser/ircparser-go/internal/parser"
)

// DefaultParser wraps the internal tokenizer for the standard RFC 1459 +
// IRCv3 tags grammar.
type DefaultParser struct{}

// ParseLine implements the Parser interface.
// The context parameter is for future use; the parse itself is O(len(raw))
// and never blocks.
func (DefaultParser) ParseLine(ctx context.Context, raw string) (Line, error) {
	return parser.Parse(raw)
}

// Ensure DefaultParser implements Parser.
var _ Parser = DefaultParser{}
