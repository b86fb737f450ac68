package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Searcher filters lines of text by a fixed query
type Searcher struct {
	query         string
	caseSensitive bool
	caser         cases.Caser
}

// NewSearcher creates a Searcher for query.
// A Searcher is not safe for concurrent use when caseSensitive is false.
func NewSearcher(query string, caseSensitive bool) *Searcher {
	s := &Searcher{
		query:         query,
		caseSensitive: caseSensitive,
	}
	if !caseSensitive {
		s.caser = cases.Lower(language.Und)
		s.query = s.caser.String(query)
	}
	return s
}

// Search returns the matching lines of contents in order.
// Returned lines are substrings of contents, never lower-cased copies.
func (s *Searcher) Search(contents string) []string {
	results := make([]string, 0)

	for line := range Lines(contents) {
		if s.Match(line) {
			results = append(results, line)
		}
	}

	return results
}

// Match reports whether line contains the query
func (s *Searcher) Match(line string) bool {
	if s.caseSensitive {
		return strings.Contains(line, s.query)
	}
	return strings.Contains(s.caser.String(line), s.query)
}
