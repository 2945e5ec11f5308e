package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ircparse",
	Short: "Parse IRC protocol lines into structured output",
	Long: `ircparse parses raw IRC protocol lines (RFC 1459 + IRCv3 message tags)
into structured output.

Lines come from files, stdin, or a growing log file; output is JSON Lines
by default, which makes it easy to process with tools like jq.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose diagnostics on stderr")
}

// newLogger returns the diagnostics logger. Without --verbose it discards
// everything.
func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
