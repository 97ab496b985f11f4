package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// Sentinel errors for file conversion.
var (
	ErrReadInput   = errors.New("failed to read markdown file")
	ErrWriteOutput = errors.New("failed to write HTML file")

	// ErrInvalidEncoding is returned when the input is not valid UTF-8.
	ErrInvalidEncoding = fileutil.ErrInvalidUTF8
)
