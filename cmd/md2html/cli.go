package main

import (
	"errors"
	"fmt"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/logger"
)

// Sentinel errors for CLI operations.
var (
	//lint:ignore ST1005 printed verbatim as the usage line
	ErrUsage = errors.New(usageLine)
	//lint:ignore ST1005 printed verbatim as "Missing <path>"
	ErrMissingInput = errors.New("Missing")
)

// CLI argument positions, after flags are removed.
const (
	minRequiredArgs    = 2
	inputFileArgIndex  = 0
	outputFileArgIndex = 1
)

// runMain runs the CLI and returns the process exit code.
// Errors are printed on stderr as-is.
func runMain(args []string, env *Environment) int {
	if err := run(args, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run parses arguments, checks the input and delegates to md2html.ConvertFile.
// Nothing is read or written unless both paths are given and the input exists.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w\n%v%s", ErrUsage, err, hints.ForUsage(flagNames))
	}

	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return nil
	}
	if flags.quiet && flags.verbose {
		return fmt.Errorf("%w\n--quiet and --verbose cannot be combined", ErrUsage)
	}

	if len(positional) < minRequiredArgs {
		return ErrUsage
	}

	log := logger.New(env.Stderr, logLevel(flags))
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(log.Debugf)
	}

	inputPath := positional[inputFileArgIndex]
	outputPath := positional[outputFileArgIndex]

	if !fileutil.Exists(inputPath) {
		return fmt.Errorf("%w %s", ErrMissingInput, inputPath)
	}

	log.ConversionStarted(inputPath, outputPath)
	start := env.Now()

	res, err := md2html.ConvertFile(inputPath, outputPath)
	if err != nil {
		log.ConversionFailed(inputPath, err)
		return fmt.Errorf("%w%s", err, hintFor(err))
	}

	log.ConversionCompleted(outputPath, res.InputLines, res.OutputLines, res.Bytes, env.Now().Sub(start))
	return nil
}

// logLevel maps verbosity flags to a logger level.
func logLevel(f *commonFlags) logger.Level {
	switch {
	case f.verbose:
		return logger.LevelVerbose
	case f.quiet:
		return logger.LevelQuiet
	default:
		return logger.LevelNormal
	}
}

// hintFor picks the hint matching a conversion error.
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2html.ErrInvalidEncoding):
		return hints.ForEncoding()
	case errors.Is(err, md2html.ErrReadInput):
		return hints.ForReadInput()
	case errors.Is(err, md2html.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
