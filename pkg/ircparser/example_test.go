package ircparser_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/ircparser/ircparser-go/pkg/ircparser"
)

// ExampleParseLine demonstrates parsing a tagged message.
func ExampleParseLine() {
	raw := "@id=123;name=rick :nick!user@host.tmi.twitch.tv PRIVMSG #rickastley :Never gonna give you up!"

	l, err := ircparser.ParseLine(raw)
	if err != nil {
		log.Printf("parse error: %v", err)
		return
	}

	fmt.Printf("Command: %s\n", l.Command)
	fmt.Printf("Source: %s\n", l.Source)
	fmt.Printf("Channel: %s\n", l.Params[0])
	fmt.Printf("Text: %s\n", l.Params[1])
	fmt.Printf("Tag id: %s\n", l.Tags["id"])
	// Output:
	// Command: PRIVMSG
	// Source: nick!user@host.tmi.twitch.tv
	// Channel: #rickastley
	// Text: Never gonna give you up!
	// Tag id: 123
}

// ExampleParseLine_errors demonstrates distinguishing the error kinds.
func ExampleParseLine_errors() {
	_, err := ircparser.ParseLine(":onlyprefix")

	switch {
	case errors.Is(err, ircparser.ErrMalformedPrefix):
		fmt.Println("prefix with nothing after it")
	case errors.Is(err, ircparser.ErrInvalidCommand):
		fmt.Println("bad command token")
	}
	// Output:
	// prefix with nothing after it
}

// ExampleParseSource demonstrates prefix decomposition.
func ExampleParseSource() {
	src := ircparser.ParseSource("nick!user@host.example.com")

	fmt.Printf("Nick: %s\n", src.Nick)
	fmt.Printf("User: %s\n", src.User)
	fmt.Printf("Host: %s\n", src.Host)
	// Output:
	// Nick: nick
	// User: user
	// Host: host.example.com
}

// ExampleParse demonstrates parsing a CRLF-terminated read buffer.
func ExampleParse() {
	lines, err := ircparser.Parse("PING :a\r\nPING :b\r\nPING :c")
	if err != nil {
		log.Printf("parse error: %v", err)
		return
	}

	for _, l := range lines {
		fmt.Println(l.Params[0])
	}
	// Output:
	// a
	// b
	// c
}
