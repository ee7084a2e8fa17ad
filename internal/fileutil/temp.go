package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempContext holds state for an atomic file write operation.
type TempContext struct {
	OutPath string
	TmpFile *os.File
	TmpName string
}

// NewTempContext creates a temp file next to outPath for atomic writing.
// Caller must defer CleanupOnError.
func NewTempContext(outPath string) (*TempContext, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating temporary file: %w", ErrIO, err)
	}

	return &TempContext{
		OutPath: outPath,
		TmpFile: tmpFile,
		TmpName: tmpFile.Name(),
	}, nil
}

// Commit closes the temp file, renames it onto the output path and returns the output size.
func (tc *TempContext) Commit() (int64, error) {
	const ownerReadWrite = 0o600

	if err := os.Chmod(tc.TmpName, ownerReadWrite); err != nil {
		return 0, fmt.Errorf("%w: setting file permissions: %w", ErrIO, err)
	}

	if err := tc.TmpFile.Close(); err != nil {
		return 0, fmt.Errorf("%w: closing temporary file: %w", ErrIO, err)
	}

	if err := os.Rename(tc.TmpName, tc.OutPath); err != nil {
		return 0, fmt.Errorf("%w: renaming output file: %w", ErrIO, err)
	}

	info, err := os.Stat(tc.OutPath)
	if err != nil {
		return 0, fmt.Errorf("%w: stat output %q: %w", ErrIO, tc.OutPath, err)
	}

	return info.Size(), nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (tc *TempContext) CleanupOnError(errp *error) {
	tc.TmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup, may already be closed

	if *errp != nil {
		os.Remove(tc.TmpName) //nolint:errcheck,gosec // best-effort cleanup
	}
}
