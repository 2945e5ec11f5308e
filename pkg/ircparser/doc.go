// Package ircparser parses IRC protocol lines (RFC 1459, extended with
// IRCv3 message tags) into structured values.
//
// This package allows you to:
//   - Parse a raw IRC line into tags, source, command, and params
//   - Distinguish the four malformed-input cases with sentinel errors
//   - Decompose a message prefix into nick, user, and host
//   - Run YAML-defined conformance suites against a parser
//
// # Basic Usage
//
// To parse a single line (terminator already stripped):
//
//	l, err := ircparser.ParseLine("@id=123 :nick!user@host PRIVMSG #chan :hello there")
//	if err != nil {
//	    log.Printf("parse error: %v", err)
//	    return
//	}
//	fmt.Println(l.Command)   // PRIVMSG
//	fmt.Println(l.Params[1]) // hello there
//	fmt.Println(l.Tags["id"]) // 123
//
// Errors identify the grammar stage that rejected the line:
//
//	if errors.Is(err, ircparser.ErrMalformedTags) {
//	    // @-block was present but invalid
//	}
//
// To parse a multi-line block (for example a read buffer holding several
// messages):
//
//	lines, err := ircparser.Parse("PING :a\r\nPING :b")
//
// # Custom Parsers
//
// Implement the [Parser] interface to wrap or replace the default parser:
//
//	type Parser interface {
//	    ParseLine(ctx context.Context, raw string) (Line, error)
//	}
//
// Use [Chain] to fall back across parsers for nonstandard server dialects.
//
// # Conformance Vectors
//
// For table-driven conformance testing from YAML files, use the [vectors]
// subpackage:
//
//	import "github.com/ircparser/ircparser-go/pkg/ircparser/vectors"
//
//	suite, err := vectors.Load("rfc1459.yaml")
//
// # Scope
//
// The parser is pure and stateless: no I/O, no retained state, safe for
// concurrent use without coordination. Connection handling, message
// serialization, and command dispatch are the caller's concern.
package ircparser
