package line

import "strings"

// Source is a decomposed message prefix.
//
// The parser leaves Line.Source as the raw prefix text; ParseSource splits it
// into its conventional parts for callers that need them.
type Source struct {
	// Nick is the sender's nickname, empty for server origins.
	Nick string `json:"nick,omitempty"`

	// User is the username between '!' and '@', if present.
	User string `json:"user,omitempty"`

	// Host is the sender's host, or the server name for server origins.
	Host string `json:"host,omitempty"`
}

// ParseSource decomposes a raw prefix of the form "nick!user@host",
// "nick@host", or a bare origin. A bare origin containing a '.' is taken to
// be a server name (Host); otherwise it is a nickname.
func ParseSource(s string) Source {
	var src Source

	if nick, rest, ok := strings.Cut(s, "!"); ok {
		src.Nick = nick
		src.User, src.Host, _ = strings.Cut(rest, "@")
		return src
	}

	if nick, host, ok := strings.Cut(s, "@"); ok {
		src.Nick = nick
		src.Host = host
		return src
	}

	if strings.Contains(s, ".") {
		src.Host = s
	} else {
		src.Nick = s
	}
	return src
}

// String reassembles the prefix in wire form.
func (s Source) String() string {
	if s.Nick == "" {
		return s.Host
	}
	var b strings.Builder
	b.WriteString(s.Nick)
	if s.User != "" {
		b.WriteByte('!')
		b.WriteString(s.User)
	}
	if s.Host != "" {
		b.WriteByte('@')
		b.WriteString(s.Host)
	}
	return b.String()
}
