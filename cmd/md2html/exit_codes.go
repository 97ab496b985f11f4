package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
)

// Exit codes for md2html CLI.
// Usage errors and a missing input share the general code.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Usage, missing input, or unexpected error
	ExitIO      = 3 // Unreadable input, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) || errors.Is(err, ErrMissingInput) {
		return ExitGeneral
	}

	if errors.Is(err, md2html.ErrReadInput) ||
		errors.Is(err, md2html.ErrWriteOutput) ||
		errors.Is(err, md2html.ErrInvalidEncoding) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	return ExitGeneral
}
