package driver

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands a list of doublestar glob patterns (e.g. "src/**/*.kd")
// into a deduplicated, sorted list of file paths (spec §4.8 "expands glob
// patterns into a file list"). A pattern matching nothing is not an error —
// an empty overall result is reported by the caller, not here.
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}
