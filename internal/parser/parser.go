// Package parser implements the IRC line tokenizer.
package parser

import (
	"strings"

	"github.com/ircparser/ircparser-go/pkg/ircparser/line"
)

// Parse parses one IRC message into a Line.
//
// raw must be a single message with any trailing CR/LF already stripped.
// The grammar is consumed left to right in fixed stages: optional @-tags
// block, optional ':' prefix, mandatory command, parameters. A failure in
// any stage aborts the parse; no partial Line is ever returned.
func Parse(raw string) (line.Line, error) {
	if raw == "" {
		return line.Line{}, &line.ParseError{
			Err:    line.ErrEmptyInput,
			Reason: "line length cannot be 0",
		}
	}

	rest := raw
	tags := map[string]string{}

	// Tags component.
	if rest[0] == '@' {
		block, after, ok := strings.Cut(rest[1:], " ")
		if !ok {
			return line.Line{}, &line.ParseError{
				Err:    line.ErrMalformedTags,
				Input:  raw,
				Reason: "tags block has no terminating space",
			}
		}
		if err := parseTags(block, tags); err != nil {
			return line.Line{}, err
		}
		rest = after
	}

	rest = strings.TrimLeft(rest, " ")

	// Source component.
	var source string
	if rest != "" && rest[0] == ':' {
		src, after, ok := strings.Cut(rest[1:], " ")
		if !ok || src == "" {
			return line.Line{}, &line.ParseError{
				Err:    line.ErrMalformedPrefix,
				Input:  rest,
				Reason: "prefix with nothing after it",
			}
		}
		source = src
		rest = after
	}

	rest = strings.TrimLeft(rest, " ")

	// Command component.
	if rest == "" {
		return line.Line{}, &line.ParseError{
			Err:    line.ErrEmptyInput,
			Input:  raw,
			Reason: "no command after tags and prefix",
		}
	}
	command, rest, _ := strings.Cut(rest, " ")
	if !validCommand(command) {
		return line.Line{}, &line.ParseError{
			Err:    line.ErrInvalidCommand,
			Input:  command,
			Reason: "command must be alphabetic or a 3-digit numeric",
		}
	}

	// Params component. A token starting with ':' switches from tokenizing
	// to raw-substring mode: the rest of the line is one parameter, spaces
	// and further ':' included, and tokenizing never resumes.
	var params []string
	for {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			break
		}
		if rest[0] == ':' {
			params = append(params, rest[1:])
			break
		}
		var tok string
		tok, rest, _ = strings.Cut(rest, " ")
		params = append(params, tok)
	}

	return line.Line{
		Tags:    tags,
		Source:  source,
		Command: command,
		Params:  params,
		Raw:     raw,
	}, nil
}

// validCommand reports whether tok is a legal command token: one or more
// alphabetic characters, or exactly 3 decimal digits.
func validCommand(tok string) bool {
	if tok == "" {
		return false
	}

	alpha := true
	digits := true
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			alpha = false
		}
		if !('0' <= c && c <= '9') {
			digits = false
		}
	}

	return alpha || (digits && len(tok) == 3)
}
