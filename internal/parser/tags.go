package parser

import (
	"strings"

	"github.com/ircparser/ircparser-go/pkg/ircparser/line"
)

// parseTags splits a tags block (the text between '@' and the first space)
// into dst. Tokens are key or key=value; a bare key yields an empty-string
// value, a present-but-valueless tag. A later duplicate key overwrites an
// earlier one.
func parseTags(block string, dst map[string]string) error {
	for _, part := range strings.Split(block, ";") {
		key, value, _ := strings.Cut(part, "=")
		if key == "" {
			return &line.ParseError{
				Err:    line.ErrMalformedTags,
				Input:  block,
				Reason: "tag with empty key",
			}
		}
		dst[key] = UnescapeTagValue(value)
	}
	return nil
}

// UnescapeTagValue decodes the IRCv3 tag-value escapes in a single forward
// pass: `\:` to ';', `\s` to space, `\\` to '\', `\r` to CR, `\n` to LF.
// A backslash before any other character decodes to that character, and a
// lone trailing backslash is dropped. A value with no backslashes is
// returned as is, without allocating.
func UnescapeTagValue(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}

	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(v) {
			break
		}
		switch v[i] {
		case ':':
			b.WriteByte(';')
		case 's':
			b.WriteByte(' ')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			// Includes '\\' and any unrecognized escape: the escaped
			// character stands for itself.
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
