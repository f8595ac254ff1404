// Package main implements the CLI driver for sortingtool.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/715d/sortingtool/internal/config"
	"github.com/715d/sortingtool/internal/driver"
)

const exitError = 1

var (
	// Set via ldflags during build.
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var (
	cfg       *config.Config
	logCloser io.Closer
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = teardown(nil, nil)
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		var cErr codedError
		if errors.As(err, &cErr) {
			os.Exit(cErr.code)
		}
		os.Exit(exitError)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortingtool [-dataType long|line|word] [-sortingType summary|natural|byCount] [-inputFile path] [-outputFile path]",
		Short: "Count, sort and rank numbers, words or lines",
		Long: `sortingtool reads numbers, words or lines from stdin or a file and reports
statistics about them.

Sorting types:
- summary: total count and the greatest number / longest word or line
- natural: every item in ascending order
- byCount: every distinct item with its number of occurrences

Defaults are -dataType word and -sortingType natural. They can be changed with
SORTINGTOOL_DATA_TYPE and SORTINGTOOL_SORTING_TYPE, also read from a .env file.`,
		Example: `  sortingtool -dataType long -sortingType summary < numbers.txt
  sortingtool -dataType line -sortingType byCount -inputFile notes.txt
  sortingtool -dataType word -outputFile report.txt`,
		Args:               cobra.ArbitraryArgs,
		RunE:               runCommand,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		SilenceUsage:       true,
		SilenceErrors:      true,
		// The single-dash long flags are resolved by internal/args.
		DisableFlagParsing: true,
	}
	return rootCmd
}

func runCommand(cmd *cobra.Command, args []string) error {
	slog.Debug("starting", "args", args, "version", version, "commit", gitCommit, "built", buildTime)

	err := driver.Run(args, cfg.Defaults, driver.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
	if err != nil {
		return errWithCode(err, exitError)
	}
	return nil
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Load()

	var logger *slog.Logger
	logger, logCloser = config.NewLogger(cfg, cmd.ErrOrStderr())
	slog.SetDefault(logger)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	if err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}

func errWithCode(err error, code int) error {
	return codedError{err: err, code: code}
}

type codedError struct {
	err  error
	code int
}

func (e codedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e codedError) Unwrap() error {
	return e.err
}
