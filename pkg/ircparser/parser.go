package ircparser

import (
	"context"
	"errors"
)

// Parser is the interface for IRC line parsers. Implementations include
// DefaultParser (the standard grammar) and caller-supplied parsers for
// nonstandard server dialects.
type Parser interface {
	// ParseLine parses a single raw line.
	// The returned error reports why the line was rejected; implementations
	// wrapping the default grammar return *ParseError values.
	ParseLine(ctx context.Context, raw string) (Line, error)
}

// ParserFunc is an adapter to allow ordinary functions to be used as
// Parsers.
type ParserFunc func(ctx context.Context, raw string) (Line, error)

// ParseLine implements the Parser interface.
func (f ParserFunc) ParseLine(ctx context.Context, raw string) (Line, error) {
	return f(ctx, raw)
}

// Chain tries parsers in order and returns the first successful parse.
// Useful for accepting dialects that bend the grammar: put the strict parser
// first and lenient fallbacks after it.
type Chain struct {
	Parsers []Parser
}

// ParseLine implements the Parser interface. If every parser rejects the
// line, the errors are joined; if the context is cancelled between parsers,
// the context error is returned immediately.
func (c *Chain) ParseLine(ctx context.Context, raw string) (Line, error) {
	var errs []error

	for _, p := range c.Parsers {
		if err := ctx.Err(); err != nil {
			return Line{}, err
		}
		if p == nil {
			continue
		}

		l, err := p.ParseLine(ctx, raw)
		if err == nil {
			return l, nil
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return Line{}, errors.New("chain has no parsers")
	}
	return Line{}, errors.Join(errs...)
}
