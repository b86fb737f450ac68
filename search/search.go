package search

import (
	"iter"
	"strings"
)

// Search returns the lines of contents that contain query, in file order
func Search(query, contents string, caseSensitive bool) []string {
	return NewSearcher(query, caseSensitive).Search(contents)
}

// SearchCaseSensitive returns the lines containing query exactly
func SearchCaseSensitive(query, contents string) []string {
	return Search(query, contents, true)
}

// SearchCaseInsensitive returns the lines containing query, ignoring case
func SearchCaseInsensitive(query, contents string) []string {
	return Search(query, contents, false)
}

// Lines yields each line of s without its terminator.
// Lines end at "\n" or "\r\n"; a final terminator does not start an empty line.
func Lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(s) {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}
