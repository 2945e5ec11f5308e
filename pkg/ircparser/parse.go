package ircparser

import (
	"strings"

	"github.com/ircparser/ircparser-go/internal/parser"
)

// ParseLine parses a single IRC message into a Line.
//
// raw must be one message with any trailing CR/LF already removed; an empty
// string is ErrEmptyInput, not a Line with an empty command.
//
// Example:
//
//	l, err := ircparser.ParseLine("PING :tmi.twitch.tv")
//	if err != nil {
//	    log.Printf("parse error: %v", err)
//	    return
//	}
//	// l.Command == "PING", l.Params[0] == "tmi.twitch.tv"
func ParseLine(raw string) (Line, error) {
	return parser.Parse(raw)
}

// Parse parses a block of text holding one or more IRC messages, one per
// line. Carriage returns are stripped and lines are split on '\n', so both
// LF and CRLF terminated input work. The first malformed line fails the
// whole call.
func Parse(text string) ([]Line, error) {
	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		l, err := parser.Parse(r)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

// UnescapeTagValue decodes IRCv3 tag-value escape sequences. ParseLine
// already applies it to every tag value; it is exported for callers handling
// tag data from elsewhere.
func UnescapeTagValue(v string) string {
	return parser.UnescapeTagValue(v)
}
