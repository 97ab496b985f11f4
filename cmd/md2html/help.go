package main

import (
	"fmt"
	"io"
)

// usageLine is printed on stderr when arguments are missing.
const usageLine = "Usage: md2html README.md README.html"

// printUsage prints the full help text.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input.md> <output.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML, overwriting the output file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Syntax:")
	fmt.Fprintln(w, "  # .. ######   headings (one level per '#')")
	fmt.Fprintln(w, "  - item        unordered list")
	fmt.Fprintln(w, "  * item        ordered list")
	fmt.Fprintln(w, "  **b** __e__   bold, emphasis")
	fmt.Fprintln(w, "  [[text]]      MD5 digest of text")
	fmt.Fprintln(w, "  ((text))      text without 'c' or 'C'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet     Only show errors")
	fmt.Fprintln(w, "  -v, --verbose   Show detailed timing")
	fmt.Fprintln(w, "  -h, --help      Show this help")
	fmt.Fprintln(w, "      --version   Show version information")
}
