package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/715d/sortingtool/internal/config"
	"github.com/715d/sortingtool/internal/driver"
)

// TestHarness executes cases against the driver.
type TestHarness struct{}

// NewHarness creates a new test harness.
func NewHarness() *TestHarness {
	return &TestHarness{}
}

// RunResult is the outcome of a single run.
type RunResult struct {
	// Run is the configuration that was executed.
	Run RunConfig

	// Success indicates if the run matched every expectation.
	Success bool

	// Details lists each mismatch.
	Details []string
}

// TestResult is the outcome of a whole case.
type TestResult struct {
	// TestCase is the case that was run.
	TestCase *TestCase

	// RunResults holds one entry per run.
	RunResults []RunResult

	// Success indicates if every run passed.
	Success bool

	// Message provides a summary of the result.
	Message string
}

// Run executes every run of tc. It sets environment variables, so cases must not run in parallel.
func (h *TestHarness) Run(t *testing.T, tc *TestCase) *TestResult {
	t.Helper()
	require.NotEmpty(t, tc.Runs, "test case has no runs")

	for _, key := range []string{config.EnvDataType, config.EnvSortingType, config.EnvLogLevel, config.EnvLogFile} {
		t.Setenv(key, "")
	}
	for key, value := range tc.Env {
		t.Setenv(key, value)
	}
	cfg := config.Load()

	var results []RunResult
	allSuccess := true
	for _, run := range tc.Runs {
		r := h.runOne(t, tc, cfg, run)
		results = append(results, *r)
		if !r.Success {
			allSuccess = false
		}
	}

	var resultMsg string
	if allSuccess {
		resultMsg = fmt.Sprintf("All %d runs passed", len(tc.Runs))
	} else {
		failedCount := 0
		var msgs []string
		for _, r := range results {
			if !r.Success {
				failedCount++
				msgs = append(msgs, fmt.Sprintf("[%s]\n  %s", r.Run.Name, strings.Join(r.Details, "\n  ")))
			}
		}
		resultMsg = fmt.Sprintf("%d/%d runs failed:\n%s", failedCount, len(tc.Runs), strings.Join(msgs, "\n"))
	}

	return &TestResult{
		TestCase:   tc,
		RunResults: results,
		Success:    allSuccess,
		Message:    resultMsg,
	}
}

// runOne executes a single run in its own temp directory.
func (h *TestHarness) runOne(t *testing.T, tc *TestCase, cfg *config.Config, run RunConfig) *RunResult {
	t.Helper()
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	outputPath := filepath.Join(dir, "output.txt")

	if tc.InputFile != nil {
		require.NoError(t, os.WriteFile(inputPath, []byte(*tc.InputFile), 0o600))
	}

	var stdout, stderr bytes.Buffer
	err := driver.Run(expandArgs(run.Args, inputPath, outputPath), cfg.Defaults, driver.Streams{
		In:  strings.NewReader(tc.Stdin),
		Out: &stdout,
		Err: &stderr,
	})

	result := &RunResult{Run: run}
	var details []string

	switch {
	case run.ExpectedError == "" && err != nil:
		details = append(details, fmt.Sprintf("Unexpected error: %v", err))
	case run.ExpectedError != "" && err == nil:
		details = append(details, fmt.Sprintf("Expected error containing %q, got none", run.ExpectedError))
	case run.ExpectedError != "" && !strings.Contains(err.Error(), run.ExpectedError):
		details = append(details, fmt.Sprintf("Expected error containing %q, got %v", run.ExpectedError, err))
	}

	details = append(details, compareText("stdout", run.Stdout, stdout.String())...)
	details = append(details, compareText("stderr", run.Stderr, stderr.String())...)

	if run.OutputFile != nil {
		data, readErr := os.ReadFile(outputPath)
		if readErr != nil {
			details = append(details, fmt.Sprintf("Output file not readable: %v", readErr))
		} else {
			details = append(details, compareText("output file", *run.OutputFile, string(data))...)
		}
	}

	result.Success = len(details) == 0
	result.Details = details
	return result
}

// compareText reports a mismatch between expected and actual text.
func compareText(what, expected, actual string) []string {
	if expected == actual {
		return nil
	}
	return []string{fmt.Sprintf("%s mismatch:\n    expected: %q\n    actual:   %q", what, expected, actual)}
}
