package ocr

import (
	"strings"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
	"github.com/ironsheep/color-notation-mcp/internal/scanner"
)

// ColorLiteral is a color literal read from an image.
type ColorLiteral struct {
	Text     string         `json:"text"`
	Notation string         `json:"notation"`
	Color    notation.Color `json:"color"`
	Start    int            `json:"start"` // Byte offset into FullText (inclusive)
	End      int            `json:"end"`   // Byte offset into FullText (exclusive)

	// Bounds covers every word the literal was read from. Nil when the
	// words could not be located.
	Bounds *Bounds `json:"bounds,omitempty"`
}

// ColorScanResult contains the recognized text of an image and the color
// literals found in it.
type ColorScanResult struct {
	FullText string         `json:"full_text"`
	Literals []ColorLiteral `json:"literals"`
}

// ScanColors runs OCR on an image and scans the recognized text for color
// literals, such as those in a screenshot of a stylesheet.
func ScanColors(imagePath string, language string) (*ColorScanResult, []scanner.Match, error) {
	result, err := ExtractText(imagePath, language)
	if err != nil {
		return nil, nil, err
	}
	scan, matches := LocateColors(result)
	return scan, matches, nil
}

// LocateColors scans result.FullText and attaches to each literal the union
// of the word boxes it overlaps.
//
// Words are located by searching for each region's text in FullText in
// order, so a word that Tesseract reports but that is missing from the text
// leaves later literals unlocated rather than misplaced.
func LocateColors(result *OCRResult) (*ColorScanResult, []scanner.Match) {
	spans := wordSpans(result)
	matches := scanner.Scan(result.FullText)

	literals := make([]ColorLiteral, 0, len(matches))
	for _, m := range matches {
		lit := ColorLiteral{
			Text:     m.Text,
			Notation: m.Notation.Name(),
			Color:    m.Color(),
			Start:    m.Start,
			End:      m.End,
		}
		for _, ws := range spans {
			if ws.start >= m.End || ws.end <= m.Start {
				continue
			}
			if lit.Bounds == nil {
				b := ws.bounds
				lit.Bounds = &b
			} else {
				*lit.Bounds = lit.Bounds.union(ws.bounds)
			}
		}
		literals = append(literals, lit)
	}

	return &ColorScanResult{
		FullText: result.FullText,
		Literals: literals,
	}, matches
}

type wordSpan struct {
	start, end int
	bounds     Bounds
}

func wordSpans(result *OCRResult) []wordSpan {
	spans := make([]wordSpan, 0, len(result.Regions))
	cursor := 0
	for _, r := range result.Regions {
		i := strings.Index(result.FullText[cursor:], r.Text)
		if i < 0 {
			break
		}
		start := cursor + i
		spans = append(spans, wordSpan{start: start, end: start + len(r.Text), bounds: r.Bounds})
		cursor = start + len(r.Text)
	}
	return spans
}
