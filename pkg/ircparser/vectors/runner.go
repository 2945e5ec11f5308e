package vectors

import (
	"context"
	"errors"
	"fmt"

	"github.com/ircparser/ircparser-go/pkg/ircparser"
	"github.com/ircparser/ircparser-go/pkg/ircparser/line"
)

// Result is the outcome of running one vector. Err is nil when the parser
// behaved as the vector expects.
type Result struct {
	ID  string
	Err error
}

// kindSentinel maps want_err kinds to the parser's sentinel errors.
var kindSentinel = map[string]error{
	"empty_input":      line.ErrEmptyInput,
	"malformed_tags":   line.ErrMalformedTags,
	"malformed_prefix": line.ErrMalformedPrefix,
	"invalid_command":  line.ErrInvalidCommand,
}

// Run executes every vector in the suite against p and returns one Result
// per vector, in suite order. A nil p runs against the default parser.
func Run(ctx context.Context, s *Suite, p ircparser.Parser) ([]Result, error) {
	if s == nil {
		return nil, errors.New("suite is nil")
	}
	if p == nil {
		p = ircparser.DefaultParser{}
	}

	results := make([]Result, 0, len(s.Vectors))
	for _, v := range s.Vectors {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, Result{ID: v.ID, Err: check(ctx, v, p)})
	}
	return results, nil
}

// Failed filters results down to the failing ones.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

func check(ctx context.Context, v Vector, p ircparser.Parser) error {
	got, err := p.ParseLine(ctx, v.Input)

	if v.WantErr != "" {
		want := kindSentinel[v.WantErr]
		if err == nil {
			return fmt.Errorf("expected %s error, parsed %q successfully", v.WantErr, v.Input)
		}
		if !errors.Is(err, want) {
			return fmt.Errorf("expected %s error, got: %v", v.WantErr, err)
		}
		return nil
	}

	if err != nil {
		return fmt.Errorf("unexpected parse error: %v", err)
	}
	return compare(got, v.Want)
}

func compare(got line.Line, want *Expect) error {
	if got.Command != want.Command {
		return fmt.Errorf("command = %q, want %q", got.Command, want.Command)
	}
	if got.Source != want.Source {
		return fmt.Errorf("source = %q, want %q", got.Source, want.Source)
	}

	if len(got.Params) != len(want.Params) {
		return fmt.Errorf("got %d params %q, want %d %q", len(got.Params), got.Params, len(want.Params), want.Params)
	}
	for i := range want.Params {
		if got.Params[i] != want.Params[i] {
			return fmt.Errorf("params[%d] = %q, want %q", i, got.Params[i], want.Params[i])
		}
	}

	if len(got.Tags) != len(want.Tags) {
		return fmt.Errorf("got %d tags %v, want %d %v", len(got.Tags), got.Tags, len(want.Tags), want.Tags)
	}
	for k, wv := range want.Tags {
		gv, ok := got.Tags[k]
		if !ok {
			return fmt.Errorf("missing tag %q", k)
		}
		if gv != wv {
			return fmt.Errorf("tag %q = %q, want %q", k, gv, wv)
		}
	}

	return nil
}
