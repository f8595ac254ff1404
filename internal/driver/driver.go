// Package driver runs one sortingtool invocation: it resolves arguments, feeds
// input lines to a processor and delivers the rendered report.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/715d/sortingtool/internal/args"
	"github.com/715d/sortingtool/internal/output"
	"github.com/715d/sortingtool/pkg/processor"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Streams are the process streams a run reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes the tool for argv. Report text goes to streams.Out and
// diagnostics to streams.Err. A run that lacks a data type or sorting type
// ends without reading input and without error. Returned errors are I/O failures.
func Run(argv []string, defaults args.Options, streams Streams) error {
	rec := output.NewRecorder(streams.Out, streams.Err)
	diag := rec.Diagnostics()

	opts := args.Resolve(argv, defaults, diag)
	if !opts.Complete() {
		slog.Info("required option missing, nothing to do",
			"data_type", opts.DataType.String(), "sorting_type", opts.OutputMode.String())
		return finish(rec, opts)
	}

	p := processor.New(opts.DataType, diag)
	if p == nil {
		return fmt.Errorf("no processor for data type %s", opts.DataType)
	}

	in, closeInput, err := openInput(opts.InputPath, streams.In)
	if err != nil {
		return err
	}
	defer closeInput()

	lines, err := feed(in, p)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	slog.Info("processed input", "lines", lines, "items", p.Len(), "data_type", opts.DataType.String())

	rec.Report().Emit(p.Render(opts.OutputMode))
	return finish(rec, opts)
}

// finish persists the recording when an output file was requested and
// surfaces console write failures.
func finish(rec *output.Recorder, opts args.Options) error {
	if opts.OutputPath != "" {
		if err := rec.Persist(opts.OutputPath); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		slog.Info("wrote output file", "path", opts.OutputPath)
	}
	if err := rec.Err(); err != nil {
		return fmt.Errorf("write console: %w", err)
	}
	return nil
}

// openInput opens path when it names an existing regular file and falls back
// to stdin otherwise.
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	noop := func() {}
	if path == "" {
		slog.Debug("reading input", "source", "stdin")
		return stdin, noop, nil
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("input file does not exist, reading stdin", "path", path)
		return stdin, noop, nil
	case err != nil:
		return nil, noop, fmt.Errorf("stat input file: %w", err)
	case !info.Mode().IsRegular():
		slog.Debug("input path is not a regular file, reading stdin", "path", path, "mode", info.Mode().String())
		return stdin, noop, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, noop, fmt.Errorf("open input file: %w", err)
	}
	slog.Debug("reading input", "source", path)
	return f, func() { _ = f.Close() }, nil
}

// feed passes every line of r to p with its terminator stripped. A leading
// byte order mark is dropped and UTF-16 input with a BOM is decoded to UTF-8.
func feed(r io.Reader, p *processor.Processor) (int, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lines := 0
	for scanner.Scan() {
		p.Process(scanner.Text())
		lines++
	}
	return lines, scanner.Err()
}
