// Package fileutil provides whole-file line reading and writing.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for file utility operations.
var (
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
	ErrEmptyPath   = errors.New("path cannot be empty")
)

// NewFilePerm is the mode a new destination is created with, before umask.
const NewFilePerm = 0o666 // rw-rw-rw-: narrowed by the process umask

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines splits content into lines after normalizing line endings.
// A final newline does not produce an extra empty line, and empty content
// produces no lines.
func SplitLines(content string) []string {
	content = NormalizeLineEndings(content)
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// ReadLines reads the whole file at path and returns its lines.
// Content that is not valid UTF-8 is rejected with ErrInvalidUTF8.
func ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's CLI argument
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}

	return SplitLines(string(data)), nil
}

// WriteFileAtomic replaces the file at path with content in a single step.
// Content goes to a temp file in the destination directory which is then
// renamed over path, so readers never observe a half-written file. A new
// destination is briefly visible empty while its mode is settled. A symlinked
// path is written through: the link target is replaced, the link is kept.
// An existing file keeps its permissions; a new file gets NewFilePerm
// narrowed by the umask.
func WriteFileAtomic(path, content string) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	}

	perm, created, err := destinationPerm(path)
	if err != nil {
		return err
	}
	if created {
		defer func() {
			if err != nil {
				_ = os.Remove(path)
			}
		}()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".md2html-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if chmodErr := os.Chmod(tmpPath, perm); chmodErr != nil {
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}

	return nil
}

// destinationPerm returns the mode the written file should carry. A missing
// destination is created empty with NewFilePerm so the kernel applies the
// umask; created reports that the caller owns it and must remove it on failure.
func destinationPerm(path string) (perm os.FileMode, created bool, err error) {
	if info, statErr := os.Stat(path); statErr == nil {
		return info.Mode().Perm(), false, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, NewFilePerm) // #nosec G302 G304 -- umask applies
	if err != nil {
		return 0, false, fmt.Errorf("creating %s: %w", path, err)
	}
	info, statErr := f.Stat()
	_ = f.Close()
	if statErr != nil {
		_ = os.Remove(path)
		return 0, false, fmt.Errorf("creating %s: %w", path, statErr)
	}
	return info.Mode().Perm(), true, nil
}

// Exists returns true if anything exists at path (file, directory, or other).
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
