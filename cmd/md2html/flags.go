package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds diagnostic flags. None of them change the conversion.
type commonFlags struct {
	quiet   bool
	verbose bool
	help    bool
	version bool
}

// flagNames lists the accepted flags for usage hints.
var flagNames = []string{"--quiet", "--verbose", "--help", "--version"}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	fs.BoolVar(&f.version, "version", false, "show version information")
}

// parseFlags parses flags and returns the positional args.
// Errors are returned, never printed: the caller decides how to report them.
func parseFlags(args []string) (*commonFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &commonFlags{}
	addCommonFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
