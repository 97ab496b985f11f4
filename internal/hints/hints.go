// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForReadInput returns a hint for input files that exist but cannot be read.
func ForReadInput() string {
	return format("input must be a readable regular file")
}

// ForEncoding returns a hint for input that is not valid UTF-8.
func ForEncoding() string {
	return format("save the markdown file as UTF-8")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUsage returns a hint listing the flags accepted besides the two paths.
func ForUsage(flags []string) string {
	if len(flags) == 0 {
		return ""
	}
	return format("flags: " + strings.Join(flags, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
