package md2html

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.Formatter = (*pipeline.InlineFormatter)(nil)

var inlineFormatter = pipeline.NewInlineFormatter()

// Convert converts Markdown lines to an HTML document.
// Each output line is terminated by a newline; no input yields "".
func Convert(lines []string) string {
	return joinLines(pipeline.Transduce(lines, inlineFormatter))
}

// ConvertString splits markdown into lines and converts it.
func ConvertString(markdown string) string {
	return Convert(fileutil.SplitLines(markdown))
}

// Format applies the inline rewrites (bold, emphasis, [[md5]], ((strip-c)))
// to a single text fragment.
func Format(text string) string {
	return inlineFormatter.Format(text)
}

// FileResult describes a completed file conversion.
type FileResult struct {
	InputLines  int // lines read from the Markdown file
	OutputLines int // HTML lines written
	Bytes       int // size of the written HTML document
}

// ConvertFile reads the Markdown file at inputPath and writes the HTML
// document to outputPath, replacing any existing file. The output is not
// touched if reading or converting fails.
func ConvertFile(inputPath, outputPath string) (*FileResult, error) {
	lines, err := fileutil.ReadLines(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	out := pipeline.Transduce(lines, inlineFormatter)
	doc := joinLines(out)

	if err := fileutil.WriteFileAtomic(outputPath, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return &FileResult{
		InputLines:  len(lines),
		OutputLines: len(out),
		Bytes:       len(doc),
	}, nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
