package preview

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
)

// ColorInfo describes one side of a comparison.
type ColorInfo struct {
	Color     notation.Color `json:"color"`
	Hex       string         `json:"hex"`
	Luminance float64        `json:"luminance"` // WCAG relative luminance (0-1)
}

// Comparison contains the perceptual relationship between two colors.
type Comparison struct {
	A ColorInfo `json:"a"`
	B ColorInfo `json:"b"`

	// Distance is the CIEDE2000 color difference. Values below about 0.01
	// are indistinguishable; 1.0 is roughly black against white.
	Distance float64 `json:"distance_ciede2000"`

	// ContrastRatio is the WCAG 2 contrast ratio, from 1 (identical
	// luminance) to 21 (black on white).
	ContrastRatio float64 `json:"contrast_ratio"`

	// WCAG is the highest level the pair passes for normal text: "AAA"
	// (>= 7), "AA" (>= 4.5), "AA-large" (>= 3, large text only) or "fail".
	WCAG string `json:"wcag"`
}

// Colorful converts c to a go-colorful color. Alpha is dropped.
func Colorful(c notation.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// RelativeLuminance returns the WCAG relative luminance of c.
func RelativeLuminance(c notation.Color) float64 {
	r, g, b := Colorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Compare measures how far apart a and b are.
func Compare(a, b notation.Color) *Comparison {
	ca, cb := Colorful(a), Colorful(b)
	la, lb := RelativeLuminance(a), RelativeLuminance(b)

	hi, lo := math.Max(la, lb), math.Min(la, lb)
	ratio := round2((hi + 0.05) / (lo + 0.05))

	return &Comparison{
		A:             ColorInfo{Color: a, Hex: ca.Hex(), Luminance: round4(la)},
		B:             ColorInfo{Color: b, Hex: cb.Hex(), Luminance: round4(lb)},
		Distance:      round4(ca.DistanceCIEDE2000(cb)),
		ContrastRatio: ratio,
		WCAG:          wcagLevel(ratio),
	}
}

func wcagLevel(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	case ratio >= 3:
		return "AA-large"
	default:
		return "fail"
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
