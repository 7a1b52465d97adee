package main

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// resolveFiles expands a list of doublestar glob patterns into a
// deduplicated, sorted list of matching file paths. A pattern with no
// glob metacharacters that names a plain file is passed through as-is so
// a bare "file.ts" argument works without needing `-name` quoting.
func resolveFiles(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no files", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}
