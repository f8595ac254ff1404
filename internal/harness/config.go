// Package harness runs end-to-end sortingtool cases described in yaml files.
package harness

// TestCase is one yaml case file: shared input plus the runs made over it.
type TestCase struct {
	// Name is the case file name without extension.
	Name string `yaml:"-"`

	// Description says what the case covers.
	Description string `yaml:"description"`

	// Stdin is fed to every run.
	Stdin string `yaml:"stdin"`

	// InputFile, when set, is written to a temp file substituted for {{input}} in args.
	InputFile *string `yaml:"input_file,omitempty"`

	// Env sets environment variables for every run.
	Env map[string]string `yaml:"env,omitempty"`

	// Runs are the invocations made over the input.
	Runs []RunConfig `yaml:"runs"`
}

// RunConfig is a single invocation and its expected outcome.
type RunConfig struct {
	// Name is a descriptive name for this run.
	Name string `yaml:"name"`

	// Args is the argument vector. {{input}} and {{output}} expand to temp file paths.
	Args []string `yaml:"args"`

	// Stdout is the expected report text.
	Stdout string `yaml:"stdout"`

	// Stderr is the expected diagnostic text.
	Stderr string `yaml:"stderr"`

	// OutputFile, when set, is the expected content of {{output}} after the run.
	OutputFile *string `yaml:"output_file,omitempty"`

	// ExpectedError is a substring of the expected run error. Empty means success.
	ExpectedError string `yaml:"expected_error,omitempty"`
}
