// Package output routes report and diagnostic lines to the console and
// persists everything emitted during a run to an output file.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Recorder tees emitted lines to console writers and keeps them, in emission
// order, for an optional output file.
type Recorder struct {
	report io.Writer
	diag   io.Writer

	buf strings.Builder

	// err is the first console write failure.
	err error
}

// NewRecorder creates a Recorder printing report lines to report and
// diagnostic lines to diag. Either writer may be nil to keep that channel
// off the console.
func NewRecorder(report, diag io.Writer) *Recorder {
	return &Recorder{report: report, diag: diag}
}

// Channel is one stream of a Recorder.
type Channel struct {
	rec *Recorder
	w   io.Writer
}

// Report returns the channel for report text.
func (r *Recorder) Report() *Channel {
	return &Channel{rec: r, w: r.report}
}

// Diagnostics returns the channel for diagnostic messages.
func (r *Recorder) Diagnostics() *Channel {
	return &Channel{rec: r, w: r.diag}
}

// Emit writes line followed by a newline. A line that already ends with a
// newline is written as is, so multi-line report text can be emitted whole.
func (c *Channel) Emit(line string) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	c.rec.buf.WriteString(line)
	if c.w == nil {
		return
	}
	if _, err := io.WriteString(c.w, line); err != nil && c.rec.err == nil {
		c.rec.err = err
	}
}

// Recorded returns everything emitted so far.
func (r *Recorder) Recorded() string {
	return r.buf.String()
}

// Err returns the first console write error, if any.
func (r *Recorder) Err() error {
	return r.err
}

// Persist writes the recording to path, replacing any existing file.
func (r *Recorder) Persist(path string) error {
	return WriteFileAtomic(path, []byte(r.buf.String()))
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it over path, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
