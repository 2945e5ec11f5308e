package parser

import (
	"testing"
)

// BenchmarkParse_Full benchmarks a fully loaded line: tags, source, command,
// middle param, and trailing.
func BenchmarkParse_Full(b *testing.B) {
	raw := "@badge-info=;badges=broadcaster/1;color=#0000FF;display-name=rick :nick!user@host.tmi.twitch.tv PRIVMSG #rickastley :Never gonna give you up!"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(raw)
	}
}

// BenchmarkParse_Minimal benchmarks the smallest interesting message.
func BenchmarkParse_Minimal(b *testing.B) {
	raw := "PING :tmi.twitch.tv"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(raw)
	}
}

// BenchmarkParse_Numeric benchmarks a server numeric reply.
func BenchmarkParse_Numeric(b *testing.B) {
	raw := ":irc.example.com 001 mynick :Welcome to the network"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(raw)
	}
}

// BenchmarkParse_EscapedTags benchmarks a line whose tag values all need
// unescaping.
func BenchmarkParse_EscapedTags(b *testing.B) {
	raw := `@system-msg=15\sraiders\sfrom\sTestChannel\shave\sjoined!;msg-id=raid :tmi.twitch.tv USERNOTICE #chan`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(raw)
	}
}

// BenchmarkParse_Invalid benchmarks the error path.
func BenchmarkParse_Invalid(b *testing.B) {
	raw := "@badtag; PRIVMSG #c :hi"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(raw)
	}
}

// BenchmarkUnescapeTagValue_NoEscapes benchmarks the allocation-free fast
// path.
func BenchmarkUnescapeTagValue_NoEscapes(b *testing.B) {
	v := "subscriber/42"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = UnescapeTagValue(v)
	}
}

// BenchmarkUnescapeTagValue_Escapes benchmarks the decoding path.
func BenchmarkUnescapeTagValue_Escapes(b *testing.B) {
	v := `an\sescaped\svalue\swith\:several\ssequences\\`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = UnescapeTagValue(v)
	}
}
