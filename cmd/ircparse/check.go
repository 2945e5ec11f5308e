package main

import (
	"context"
	"fmt"

	"github.com/ircparser/ircparser-go/pkg/ircparser/vectors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <suite.yaml>...",
	Short: "Run YAML conformance suites against the parser",
	Long: `Run one or more YAML conformance suites against the parser and report
per-vector failures. Exits non-zero if any vector fails.

Example suite:

  version: 1
  vectors:
    - id: ping
      input: "PING :tmi.twitch.tv"
      want:
        command: PING
        params: ["tmi.twitch.tv"]
    - id: empty
      input: ""
      want_err: empty_input`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	totalFailed := 0
	for _, path := range args {
		suite, err := vectors.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		results, err := vectors.Run(ctx, suite, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		failed := vectors.Failed(results)
		fmt.Fprintf(out, "%s: %d vectors, %d failed\n", path, len(results), len(failed))
		for _, r := range failed {
			fmt.Fprintf(out, "  FAIL %s: %v\n", r.ID, r.Err)
		}
		totalFailed += len(failed)
	}

	if totalFailed > 0 {
		return fmt.Errorf("%d vector(s) failed", totalFailed)
	}
	return nil
}
