// Package args resolves the sortingtool command line into run options.
package args

import (
	"fmt"
	"strings"

	"github.com/715d/sortingtool/pkg/processor"
	"github.com/715d/sortingtool/pkg/registry"
)

// Recognized flags.
const (
	FlagDataType    = "-dataType"
	FlagSortingType = "-sortingType"
	FlagInputFile   = "-inputFile"
	FlagOutputFile  = "-outputFile"
)

// Options is the resolved configuration for one run.
type Options struct {
	DataType   registry.DataType
	OutputMode registry.OutputMode

	// InputPath is empty when input comes from stdin.
	InputPath string

	// OutputPath is empty when the report is not written to a file.
	OutputPath string
}

// Complete reports whether both required options are set.
func (o Options) Complete() bool {
	return o.DataType.Valid() && o.OutputMode.Valid()
}

// option describes one recognized flag.
type option struct {
	// errorMessage is emitted when the value is missing or invalid.
	errorMessage string

	// set applies value and reports whether it was accepted.
	set func(o *Options, value string) bool

	// unset clears the option after a rejected value.
	unset func(o *Options)
}

var options = map[string]option{
	FlagDataType: {
		errorMessage: "No data type defined!",
		set: func(o *Options, value string) bool {
			dt, ok := registry.ParseDataType(value)
			o.DataType = dt
			return ok
		},
		unset: func(o *Options) { o.DataType = registry.DataTypeUnknown },
	},
	FlagSortingType: {
		errorMessage: "No sorting type defined!",
		set: func(o *Options, value string) bool {
			mode, ok := registry.ParseOutputMode(value)
			o.OutputMode = mode
			return ok
		},
		unset: func(o *Options) { o.OutputMode = registry.OutputModeUnknown },
	},
	FlagInputFile: {
		errorMessage: "No input file defined!",
		set: func(o *Options, value string) bool {
			o.InputPath = value
			return isPathValue(value)
		},
		unset: func(o *Options) { o.InputPath = "" },
	},
	FlagOutputFile: {
		errorMessage: "No output file defined!",
		set: func(o *Options, value string) bool {
			o.OutputPath = value
			return isPathValue(value)
		},
		unset: func(o *Options) { o.OutputPath = "" },
	},
}

// isPathValue rejects empty values and values that are themselves flags.
func isPathValue(value string) bool {
	return value != "" && !strings.HasPrefix(value, "-")
}

// Resolve walks args, starting from defaults, and returns the resulting options.
//
// Every argument is inspected: a recognized flag takes the following argument
// as its value, and any other argument starting with "-" is reported and
// ignored. A missing or invalid value reports the flag's error message and
// leaves that option unset. Messages go to diag.
func Resolve(args []string, defaults Options, diag processor.Sink) Options {
	if diag == nil {
		diag = processor.Discard
	}
	opts := defaults

	for i, arg := range args {
		opt, known := options[arg]
		if !known {
			if strings.HasPrefix(arg, "-") {
				diag.Emit(fmt.Sprintf("\"%s\" is not a valid parameter. It will be skipped.", arg))
			}
			continue
		}

		if i+1 >= len(args) {
			opt.unset(&opts)
			diag.Emit(opt.errorMessage)
			continue
		}
		if !opt.set(&opts, args[i+1]) {
			opt.unset(&opts)
			diag.Emit(opt.errorMessage)
		}
	}

	return opts
}
