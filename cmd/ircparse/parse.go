package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ircparser/ircparser-go/pkg/ircparser"
	"github.com/spf13/cobra"
)

// maxLineBytes bounds a single input line. The IRC wire limit is 512 bytes
// plus up to 8191 for the tags block; 64KB leaves room for sloppy logs.
const maxLineBytes = 64 * 1024

var (
	parseFormat     string
	parseIncludeRaw bool
	parseSkipErrors bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse IRC lines from files or stdin",
	Long: `Parse raw IRC protocol lines from the given files, or from stdin when no
file is given. Each input line is one IRC message with its CR/LF already
part of the line ending (trailing CR is stripped).

Examples:
  # Parse a saved raw log
  ircparse parse session.log

  # Parse from a pipe
  cat session.log | ircparse parse

  # Human-readable output, keep going past malformed lines
  ircparse parse --format pretty --skip-errors session.log

  # Pipe to jq
  ircparse parse session.log | jq 'select(.command == "PRIVMSG")'`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	parseCmd.Flags().BoolVar(&parseIncludeRaw, "raw", false,
		"Include the raw input line in jsonl output")
	parseCmd.Flags().BoolVar(&parseSkipErrors, "skip-errors", false,
		"Warn about malformed lines instead of stopping")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if !ValidFormats[parseFormat] {
		return fmt.Errorf("unknown format: %s", parseFormat)
	}
	log := newLogger()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return parseStream(cmd.InOrStdin(), "stdin", out)
	}

	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		log.Debug("parsing file", "path", path)
		err = parseStream(f, path, out)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// parseStream parses r line by line, writing each parsed line to out.
func parseStream(r io.Reader, name string, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSuffix(scanner.Text(), "\r")

		l, err := ircparser.ParseLine(raw)
		if err != nil {
			if parseSkipErrors {
				fmt.Fprintf(os.Stderr, "warning: %s:%d: %v\n", name, lineNo, err)
				continue
			}
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		if !parseIncludeRaw {
			l.Raw = ""
		}

		if err := OutputLine(parseFormat, l, out); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
