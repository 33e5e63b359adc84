// Package scanner finds color literals of every registered notation in a text
// buffer and converts a found literal into all other notations.
//
// Scan is a pure function of its input: it holds no state between calls and
// may be called concurrently. Callers that cache a match list for a document
// are expected to replace that list wholesale after every edit.
package scanner

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
)

// ErrNotALiteral is returned by ParseLiteral when the input is not exactly one
// color literal.
var ErrNotALiteral = errors.New("not a color literal")

// Match is one recognized color literal.
//
// Start and End are byte offsets into the scanned text, forming the half-open
// span [Start, End).
type Match struct {
	Notation notation.Notation
	Text     string
	Groups   []string
	Start    int
	End      int
}

// Color parses the match with its owning notation.
func (m Match) Color() notation.Color {
	return m.Notation.Parse(m.Groups)
}

// Covers reports whether the selection [start, end] lies entirely inside the
// match. A cursor is a selection with start == end; a cursor sitting right
// after the last character still counts.
func (m Match) Covers(start, end int) bool {
	return start >= m.Start && end <= m.End && start <= end
}

// Scan returns every color literal in text, ordered by start offset.
//
// Each notation is run over the whole text in registry order, then all
// results are stable-sorted by start offset.
func Scan(text string) []Match {
	var matches []Match
	for _, n := range notation.All() {
		for _, occ := range n.Recognize(text) {
			matches = append(matches, Match{
				Notation: n,
				Text:     occ.Text,
				Groups:   occ.Groups,
				Start:    occ.Start,
				End:      occ.End,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})
	return matches
}

// Covering returns the matches that fully contain the selection [start, end],
// in their original order. A selection outside every match yields nil.
func Covering(matches []Match, start, end int) []Match {
	var out []Match
	for _, m := range matches {
		if m.Covers(start, end) {
			out = append(out, m)
		}
	}
	return out
}

// ParseLiteral recognizes s (ignoring surrounding whitespace) as a single
// color literal.
//
// The whole trimmed input must be one literal: "#fff" and " rgb(1,2,3) " are
// accepted, "#fff #000" and "color: #fff" are not.
func ParseLiteral(s string) (Match, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Match{}, fmt.Errorf("empty input: %w", ErrNotALiteral)
	}

	matches := Scan(trimmed)
	if len(matches) != 1 || matches[0].Start != 0 || matches[0].End != len(trimmed) {
		return Match{}, fmt.Errorf("%q: %w", trimmed, ErrNotALiteral)
	}
	return matches[0], nil
}
