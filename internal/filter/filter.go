// Package filter resolves the files a batch run operates on.
package filter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoFiles is returned when no file matched the arguments.
var ErrNoFiles = errors.New("no files matched")

// Filter selects files by matching their base name against glob patterns.
// Empty includes match every file. Excludes always win.
type Filter struct {
	includes []string
	excludes []string
}

// New validates the patterns and returns a Filter.
func New(includes, excludes []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, includes...), excludes...) {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
	}

	return &Filter{includes: includes, excludes: excludes}, nil
}

// Match reports whether the base name of path matches an include and no exclude.
func (f *Filter) Match(path string) bool {
	base := filepath.Base(path)

	included := len(f.includes) == 0 || matchAny(f.includes, base)

	return included && !matchAny(f.excludes, base)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// Resolve takes positional args (files/directories) and include/exclude patterns.
// Files are added directly, bypassing filtering. Directories are walked and filtered.
// Returns matched files in argument order and the total candidates scanned.
func Resolve(args, includes, excludes []string) (files []string, scanned int, err error) {
	flt, err := New(includes, excludes)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			scanned++

			if flt.Match(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, 0, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("%w: %v", ErrNoFiles, args)
	}

	return files, scanned, nil
}
