package scanner

import (
	"sort"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
)

// Target is one notation's rendering of a converted color.
type Target struct {
	Notation string `json:"notation"`
	Value    string `json:"value"`
}

// Conversion is a match re-rendered in every other notation.
type Conversion struct {
	// Source is the name of the notation that recognized the match.
	Source string `json:"source"`

	// Text is the literal as it appeared in the scanned text.
	Text string `json:"text"`

	// Color is the canonical color the match parsed to.
	Color notation.Color `json:"color"`

	// Targets holds one entry per other notation, in registry order.
	// Values may repeat across notations.
	Targets []Target `json:"targets"`

	// Choices is the set of distinct target values, sorted alphabetically.
	Choices []string `json:"choices"`
}

// Value returns the rendering for the named target notation.
func (c Conversion) Value(name string) (string, bool) {
	for _, t := range c.Targets {
		if t.Notation == name {
			return t.Value, true
		}
	}
	return "", false
}

// Convert parses m with its own notation and formats the result with every
// other registered notation.
func Convert(m Match) Conversion {
	color := m.Color()

	conv := Conversion{
		Source: m.Notation.Name(),
		Text:   m.Text,
		Color:  color,
	}

	seen := make(map[string]bool)
	for _, n := range notation.All() {
		if n == m.Notation {
			continue
		}
		value := n.Format(color)
		conv.Targets = append(conv.Targets, Target{Notation: n.Name(), Value: value})
		if !seen[value] {
			seen[value] = true
			conv.Choices = append(conv.Choices, value)
		}
	}
	sort.Strings(conv.Choices)

	return conv
}
