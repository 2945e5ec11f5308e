package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ircparser/ircparser-go/pkg/ircparser"
	"github.com/nxadm/tail"
	"github.com/spf13/cobra"
)

var (
	tailFormat     string
	tailIncludeRaw bool
	tailFromStart  bool
)

var tailCmd = &cobra.Command{
	Use:   "tail <file>",
	Short: "Follow a raw IRC log file and output parsed lines",
	Long: `Follow a growing file of raw IRC lines (for example a bouncer or bot
transcript) and output each new line as it is parsed. The file is reopened
if it is rotated. Malformed lines are warned about and skipped; stopping a
live tail on the first bad line would be useless.

Examples:
  # Follow new lines
  ircparse tail irc-raw.log

  # Replay the whole file first, then follow
  ircparse tail --from-start irc-raw.log

  # Pretty output
  ircparse tail --format pretty irc-raw.log`,
	Args: cobra.ExactArgs(1),
	RunE: runTail,
}

func init() {
	tailCmd.Flags().StringVarP(&tailFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	tailCmd.Flags().BoolVar(&tailIncludeRaw, "raw", false,
		"Include the raw input line in jsonl output")
	tailCmd.Flags().BoolVar(&tailFromStart, "from-start", false,
		"Read the file from the beginning before following")

	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	if !ValidFormats[tailFormat] {
		return fmt.Errorf("unknown format: %s", tailFormat)
	}
	log := newLogger()
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	}
	if !tailFromStart {
		cfg.Location = &tail.SeekInfo{Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(args[0], cfg)
	if err != nil {
		return err
	}
	defer t.Cleanup()
	log.Debug("tailing file", "path", args[0])

	for {
		select {
		case tl, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if tl.Err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", tl.Err)
				continue
			}

			raw := strings.TrimSuffix(tl.Text, "\r")
			l, err := ircparser.ParseLine(raw)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				continue
			}
			if !tailIncludeRaw {
				l.Raw = ""
			}

			if err := OutputLine(tailFormat, l, out); err != nil {
				return fmt.Errorf("output error: %w", err)
			}

		case <-ctx.Done():
			_ = t.Stop()
			return nil
		}
	}
}
