package search

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseSensitive(t *testing.T) {
	query := "duct"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

	assert.Equal(t, []string{"safe, fast, productive."}, SearchCaseSensitive(query, contents))
}

func TestCaseInsensitive(t *testing.T) {
	query := "rUsT"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	assert.Equal(t, []string{"Rust:", "Trust me."}, SearchCaseInsensitive(query, contents))
}

func TestSearch(t *testing.T) {
	poem := "I'm nobody! Who are you?\nAre you nobody, too?\nThen there's a pair of us - don't tell!\nThey'd banish us, you know.\n"

	tests := []struct {
		name          string
		query         string
		contents      string
		caseSensitive bool
		want          []string
	}{
		{
			name:          "matches in order",
			query:         "you",
			contents:      poem,
			caseSensitive: true,
			want:          []string{"I'm nobody! Who are you?", "Are you nobody, too?", "They'd banish us, you know."},
		},
		{
			name:          "line with repeated query is returned once",
			query:         "o",
			contents:      "foo boo\nbar",
			caseSensitive: true,
			want:          []string{"foo boo"},
		},
		{
			name:          "no match",
			query:         "monomorphization",
			contents:      poem,
			caseSensitive: false,
			want:          []string{},
		},
		{
			name:          "case insensitive keeps original text",
			query:         "THEN",
			contents:      poem,
			caseSensitive: false,
			want:          []string{"Then there's a pair of us - don't tell!"},
		},
		{
			name:          "crlf terminators are stripped",
			query:         "b",
			contents:      "ab\r\ncd\r\nbe\r\n",
			caseSensitive: true,
			want:          []string{"ab", "be"},
		},
		{
			name:          "unicode lower-casing",
			query:         "ÄPFEL",
			contents:      "äpfel\nbirnen",
			caseSensitive: false,
			want:          []string{"äpfel"},
		},
		{
			name:          "empty contents",
			query:         "",
			contents:      "",
			caseSensitive: true,
			want:          []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Search(tt.query, tt.contents, tt.caseSensitive))
		})
	}
}

func TestEmptyQueryMatchesEveryLine(t *testing.T) {
	contents := "one\n\nThree\n"
	want := []string{"one", "", "Three"}

	assert.Equal(t, want, Search("", contents, true))
	assert.Equal(t, want, Search("", contents, false))
}

func TestResultIsSubsequenceOfLines(t *testing.T) {
	contents := "alpha\nbeta\nAlphabet\ngamma\nalpha\n"
	lines := slices.Collect(Lines(contents))

	for _, caseSensitive := range []bool{true, false} {
		results := Search("alpha", contents, caseSensitive)

		i := 0
		for _, r := range results {
			for i < len(lines) && lines[i] != r {
				i++
			}
			assert.Less(t, i, len(lines), "result %q out of order", r)
			i++
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\n", []string{"a", ""}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\rb\n", []string{"a\rb"}},
		{"\n", []string{""}},
		{"a\r", []string{"a\r"}},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.in, "\n", `\n`), func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(Lines(tt.in)))
		})
	}
}

func TestSearcherReuse(t *testing.T) {
	s := NewSearcher("GO", false)

	assert.True(t, s.Match("gopher"))
	assert.False(t, s.Match("rust"))
	assert.Equal(t, []string{"Go", "go"}, s.Search("Go\nRust\ngo"))
	assert.Equal(t, []string{"ago"}, s.Search("ago\nzig"))
}
