package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ircparser/ircparser-go/pkg/ircparser"
)

// ValidFormats lists all valid output formats.
var ValidFormats = map[string]bool{
	"jsonl":  true,
	"pretty": true,
}

// OutputLine writes a parsed line in the specified format to the writer.
func OutputLine(format string, l ircparser.Line, out io.Writer) error {
	switch format {
	case "jsonl":
		return OutputJSON(l, out)
	case "pretty":
		return OutputPretty(l, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// OutputJSON writes a parsed line as JSON Lines format.
func OutputJSON(l ircparser.Line, out io.Writer) error {
	data, err := json.Marshal(l)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// OutputPretty writes a parsed line in human-readable format:
//
//	[PRIVMSG] nick!user@host #chan "hello there" (id=123)
func OutputPretty(l ircparser.Line, out io.Writer) error {
	var sb strings.Builder

	sb.WriteByte('[')
	sb.WriteString(l.Command)
	sb.WriteByte(']')

	if l.Source != "" {
		sb.WriteByte(' ')
		sb.WriteString(l.Source)
	}
	for _, p := range l.Params {
		sb.WriteByte(' ')
		sb.WriteString(quoteIfNeeded(p))
	}
	if len(l.Tags) > 0 {
		sb.WriteString(" (")
		sb.WriteString(formatTags(l.Tags))
		sb.WriteByte(')')
	}

	_, err := fmt.Fprintln(out, sb.String())
	return err
}

// formatTags formats tags as sorted key=value pairs.
func formatTags(tags map[string]string) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(tags))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, quoteIfNeeded(tags[k])))
	}
	return strings.Join(parts, " ")
}

// quoteIfNeeded quotes a value if it contains special characters or control
// characters. Returns the value unchanged if no quoting is needed.
func quoteIfNeeded(v string) string {
	if v == "" {
		return `""`
	}

	needsQuote := false
	for _, c := range v {
		if c == ' ' || c == '=' || c == '"' || c == '\\' || c < 0x20 || c == 0x7F {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return v
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range v {
		switch {
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c < 0x20 || c == 0x7F:
			sb.WriteString(fmt.Sprintf(`\x%02x`, c))
		default:
			sb.WriteRune(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
