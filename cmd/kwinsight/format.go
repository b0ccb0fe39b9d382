package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

var (
	_          pflag.Value = (*outputFormat)(nil)
	allFormats             = []outputFormat{formatText, formatJSON}
)

func (f *outputFormat) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Type() string {
	return "format"
}

// outputFlags registers --output and its --json shorthand.
type outputFlags struct {
	format outputFormat
	json   bool
}

func addOutputFlags(flags *pflag.FlagSet) *outputFlags {
	o := &outputFlags{format: formatText}
	flags.VarP(&o.format, "output", "o", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	flags.BoolVar(&o.json, "json", false, "Shorthand for --output json")
	return o
}

func (o *outputFlags) asJSON() bool {
	return o.json || o.format == formatJSON
}
