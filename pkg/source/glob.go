package source

import (
	"fmt"
	"path/filepath"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ExpandPaths expands file paths and glob patterns into a deduplicated list.
// Results keep the order of the patterns; matches within one pattern are
// sorted. Patterns that match nothing are kept as literal paths so Open can
// report a useful error, and Stdin passes through unchanged.
func ExpandPaths(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}

	for _, pattern := range patterns {
		if pattern == Stdin {
			add(pattern)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}

		for _, match := range matches {
			add(match)
		}
	}

	return result, nil
}
