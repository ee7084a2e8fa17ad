package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// Patterns merges the given include globs with those listed in the JSONC file at from.
// Blank entries are dropped. An empty from skips the file.
func Patterns(includes []string, from string) ([]string, error) {
	merged := make([]string, 0, len(includes))

	for _, p := range includes {
		if p = strings.TrimSpace(p); p != "" {
			merged = append(merged, p)
		}
	}

	if from == "" {
		return merged, nil
	}

	loaded, err := LoadPatterns(from)
	if err != nil {
		return nil, err
	}

	for _, p := range loaded {
		if p = strings.TrimSpace(p); p != "" {
			merged = append(merged, p)
		}
	}

	return merged, nil
}

// LoadPatterns reads a JSONC array of glob patterns. Comments and trailing commas are allowed.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}
