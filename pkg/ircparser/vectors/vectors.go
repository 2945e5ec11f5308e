// Package vectors loads YAML conformance suites for IRC line parsers.
// A suite is a list of input lines with either an expected parse result or
// an expected error kind, so parser behavior can be pinned down in data
// rather than code.
package vectors

// Suite represents the structure of a YAML vector file.
//
// Example YAML file:
//
//	version: 1
//	vectors:
//	  - id: privmsg_with_tags
//	    input: "@id=123 :nick!u@h PRIVMSG #c :hi there"
//	    want:
//	      tags: {id: "123"}
//	      source: nick!u@h
//	      command: PRIVMSG
//	      params: ["#c", "hi there"]
//	  - id: empty_line
//	    input: ""
//	    want_err: empty_input
type Suite struct {
	// Version is the vector file format version. Currently only version 1
	// is supported.
	Version int `yaml:"version"`

	// Vectors is the list of test vectors.
	Vectors []Vector `yaml:"vectors"`
}

// Vector is a single conformance case. Exactly one of Want and WantErr must
// be set: Want pins the full parse result, WantErr names the expected error
// kind.
type Vector struct {
	// ID is a unique identifier for this vector within the suite.
	ID string `yaml:"id"`

	// Input is the raw line handed to the parser. May be empty (that is
	// itself a case worth pinning).
	Input string `yaml:"input"`

	// Want is the expected parse result.
	Want *Expect `yaml:"want,omitempty"`

	// WantErr is the expected error kind: one of "empty_input",
	// "malformed_tags", "malformed_prefix", "invalid_command".
	WantErr string `yaml:"want_err,omitempty"`
}

// Expect is the expected Line content for a successful parse.
type Expect struct {
	Tags    map[string]string `yaml:"tags,omitempty"`
	Source  string            `yaml:"source,omitempty"`
	Command string            `yaml:"command"`
	Params  []string          `yaml:"params,omitempty"`
}
