package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// SetMaxProcs tunes GOMAXPROCS and reports through logf. Nil skips it.
	SetMaxProcs func(logf func(format string, args ...interface{}))
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		SetMaxProcs: setMaxProcs,
	}
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(logf func(format string, args ...interface{})) {
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}
