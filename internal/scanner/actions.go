package scanner

import (
	"unicode/utf16"
)

// Position is a zero-based line/character location in a text buffer.
//
// Character counts UTF-16 code units from the start of the line, which is
// what editors speaking the language server protocol expect.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a start/end pair of positions.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// PositionAt converts a byte offset into a Position. Offsets outside the text
// are clamped to its ends.
func PositionAt(text string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	var pos Position
	for _, r := range text[:offset] {
		if r == '\n' {
			pos.Line++
			pos.Character = 0
			continue
		}
		pos.Character += utf16.RuneLen(r)
	}
	return pos
}

// CodeAction is a quick-fix that replaces a literal with another notation.
type CodeAction struct {
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Start   int    `json:"start"` // Byte offset of the replaced span (inclusive)
	End     int    `json:"end"`   // Byte offset of the replaced span (exclusive)
	Range   Range  `json:"range"`
	NewText string `json:"new_text"`
}

// CodeActions returns one quick-fix per distinct conversion of every match in
// matches that covers the selection [start, end] of text.
//
// The matches must come from scanning text. A selection covering no match
// yields no actions.
func CodeActions(text string, matches []Match, start, end int) []CodeAction {
	var actions []CodeAction
	for _, m := range Covering(matches, start, end) {
		rng := Range{Start: PositionAt(text, m.Start), End: PositionAt(text, m.End)}
		for _, value := range Convert(m).Choices {
			actions = append(actions, CodeAction{
				Title:   "Convert to " + value,
				Kind:    "quickfix",
				Start:   m.Start,
				End:     m.End,
				Range:   rng,
				NewText: value,
			})
		}
	}
	return actions
}
