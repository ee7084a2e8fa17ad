// Package fileutil provides the text file helpers used by the menu and the processor.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrIO wraps every file access failure.
var ErrIO = errors.New("file access failed")

// ReadText reads a UTF-8 text file and trims surrounding whitespace.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %w", ErrIO, path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

// WriteText atomically writes content to path, creating parent directories.
// It returns the number of bytes written.
func WriteText(path, content string) (size int64, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("%w: creating directory for %q: %w", ErrIO, path, err)
	}

	tc, err := NewTempContext(path)
	if err != nil {
		return 0, err
	}

	defer tc.CleanupOnError(&err)

	if _, err = tc.TmpFile.WriteString(content); err != nil {
		return 0, fmt.Errorf("%w: writing %q: %w", ErrIO, tc.TmpName, err)
	}

	return tc.Commit()
}

// OutputPath returns dir/<stem><suffix>.txt, with stem the base name of input
// stripped of its extension.
func OutputPath(dir, input, suffix string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(dir, stem+suffix+".txt")
}

// Describe classifies an IO failure for reporting.
func Describe(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "file not found"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return "file system error"
	}
}
