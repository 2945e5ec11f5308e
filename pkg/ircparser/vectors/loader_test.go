package vectors_test

import (
	"path/filepath"
	"testing"

	"github.com/ircparser/ircparser-go/pkg/ircparser/vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := vectors.Load(filepath.Join("testdata", "rfc1459.yaml"))
	require.NoError(t, err)
	assert.Equal(t, vectors.SupportedVersion, s.Version)
	assert.NotEmpty(t, s.Vectors)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := vectors.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	// Path must not leak into the message
	assert.NotContains(t, err.Error(), "testdata")
}

func TestLoadBytes(t *testing.T) {
	data := []byte(`version: 1
vectors:
  - id: ping
    input: "PING :a"
    want:
      command: PING
      params: ["a"]`)

	s, err := vectors.LoadBytes(data)
	require.NoError(t, err)
	require.Len(t, s.Vectors, 1)
	assert.Equal(t, "ping", s.Vectors[0].ID)
	require.NotNil(t, s.Vectors[0].Want)
	assert.Equal(t, "PING", s.Vectors[0].Want.Command)
}

func TestLoadBytes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string // substring of the error
	}{
		{
			name: "empty",
			data: "",
			want: "empty",
		},
		{
			name: "bad yaml",
			data: "{{{{",
			want: "YAML",
		},
		{
			name: "unsupported version",
			data: "version: 2\nvectors:\n  - id: a\n    input: x\n    want_err: empty_input",
			want: "unsupported version",
		},
		{
			name: "no vectors",
			data: "version: 1",
			want: "at least one vector",
		},
		{
			name: "missing id",
			data: "version: 1\nvectors:\n  - input: x\n    want_err: empty_input",
			want: "id is required",
		},
		{
			name: "duplicate id",
			data: "version: 1\nvectors:\n  - id: a\n    input: x\n    want_err: empty_input\n  - id: a\n    input: y\n    want_err: empty_input",
			want: "duplicate id",
		},
		{
			name: "both want and want_err",
			data: "version: 1\nvectors:\n  - id: a\n    input: x\n    want_err: empty_input\n    want:\n      command: PING",
			want: "exactly one",
		},
		{
			name: "neither want nor want_err",
			data: "version: 1\nvectors:\n  - id: a\n    input: x",
			want: "exactly one",
		},
		{
			name: "unknown error kind",
			data: "version: 1\nvectors:\n  - id: a\n    input: x\n    want_err: nonsense",
			want: "unknown error kind",
		},
		{
			name: "want without command",
			data: "version: 1\nvectors:\n  - id: a\n    input: x\n    want:\n      params: [\"b\"]",
			want: "command is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vectors.LoadBytes([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func FuzzLoadBytes(f *testing.F) {
	f.Add([]byte(`version: 1
vectors:
  - id: ping
    input: "PING :a"
    want:
      command: PING`))
	f.Add([]byte(""))
	f.Add([]byte("not yaml"))
	f.Add([]byte("version: 999"))
	f.Add([]byte{0xff, 0xfe, 0xfd})

	f.Fuzz(func(t *testing.T, data []byte) {
		// LoadBytes should never panic, regardless of input
		s, err := vectors.LoadBytes(data)

		if (s == nil) == (err == nil) {
			t.Errorf("LoadBytes inconsistent: suite=%v, err=%v", s != nil, err)
		}
		if s != nil && s.Validate() != nil {
			t.Error("LoadBytes returned a suite that fails its own validation")
		}
	})
}
