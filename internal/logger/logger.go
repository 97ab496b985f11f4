// Package logger wraps charm/log for structured diagnostics on stderr.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Level is a logging level.
type Level = log.Level

// Verbosity levels selected by CLI flags.
const (
	LevelQuiet   = log.ErrorLevel
	LevelNormal  = log.WarnLevel
	LevelVerbose = log.DebugLevel
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "md2html",
		Level:  level,
	})
	return &Logger{Logger: l}
}

// ConversionStarted logs the start of a file conversion.
func (l *Logger) ConversionStarted(input, output string) {
	l.Debug("conversion started",
		"input", input,
		"output", output)
}

// ConversionCompleted logs a successful file conversion.
func (l *Logger) ConversionCompleted(output string, inputLines, outputLines, bytes int, duration time.Duration) {
	l.Debug("conversion completed",
		"output", output,
		"input_lines", inputLines,
		"output_lines", outputLines,
		"bytes", bytes,
		"duration", duration.Round(time.Microsecond))
}

// ConversionFailed logs a failed file conversion.
func (l *Logger) ConversionFailed(input string, err error) {
	l.Debug("conversion failed",
		"input", input,
		"error", err)
}
