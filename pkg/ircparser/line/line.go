// Package line defines the data types shared between the public ircparser
// API and the internal tokenizer.
package line

// Line is a single parsed IRC message.
//
// A Line produced by a successful parse owns all of its string data and is
// independent of the buffer the raw line was read from. It has no mutation
// contract after construction.
type Line struct {
	// Tags holds the IRCv3 message tags. It is never nil on a successful
	// parse: a line without a @-block yields an empty map, so callers can
	// always index it safely. Values are unescaped.
	Tags map[string]string `json:"tags"`

	// Source is the message prefix without the leading ':', exactly as it
	// appeared on the wire (e.g. "nick!user@host" or a server name).
	// Empty means the line carried no prefix; a successful parse can never
	// produce an empty prefix, so the zero value is unambiguous.
	// Use ParseSource to decompose it.
	Source string `json:"source,omitempty"`

	// Command is the message verb: an alphabetic token or a 3-digit
	// numeric reply code, case preserved as written.
	Command string `json:"command"`

	// Params are the command parameters in order. Only the last parameter
	// may contain spaces (when introduced by a trailing ':' marker), and
	// only the trailing parameter may be empty.
	Params []string `json:"params,omitempty"`

	// Raw is the original input line, untouched.
	Raw string `json:"raw,omitempty"`
}

// Param returns the i-th parameter, or the empty string if the index is out
// of range. Convenient for commands with optional parameters.
func (l *Line) Param(i int) string {
	if i < 0 || i >= len(l.Params) {
		return ""
	}
	return l.Params[i]
}
