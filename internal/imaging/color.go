package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
	"github.com/ironsheep/color-notation-mcp/internal/scanner"
)

// Literals renders c in every registered notation, in registry order.
func Literals(c notation.Color) []scanner.Target {
	all := notation.All()
	literals := make([]scanner.Target, 0, len(all))
	for _, n := range all {
		literals = append(literals, scanner.Target{Notation: n.Name(), Value: n.Format(c)})
	}
	return literals
}

// PixelColor is the color of one pixel.
type PixelColor struct {
	X        int              `json:"x"`
	Y        int              `json:"y"`
	Color    notation.Color   `json:"color"`
	Literals []scanner.Target `json:"literals"`
}

// Sample returns the color at pixel (x, y).
//
// The color is un-premultiplied, so a half transparent red pixel reads as
// rgba(255, 0, 0, 0.5) rather than a darker red.
func Sample(img image.Image, x, y int) (*PixelColor, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, img.Bounds())
	}

	c := toColor(img.At(x, y))
	return &PixelColor{
		X:        x,
		Y:        y,
		Color:    c,
		Literals: Literals(c),
	}, nil
}

func toColor(c color.Color) notation.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return notation.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// PaletteColor is one of the most common colors of an image.
type PaletteColor struct {
	Color      notation.Color   `json:"color"`
	Percentage float64          `json:"percentage"` // Share of counted pixels (0-100)
	Literals   []scanner.Target `json:"literals"`
}

// PaletteResult contains the most common colors, most frequent first.
type PaletteResult struct {
	Colors []PaletteColor `json:"colors"`
	Pixels int            `json:"pixels"` // Number of pixels counted
}

// Palette returns up to count of the most common colors in region of img,
// or in the whole image when region is nil.
//
// Similar colors are grouped by clearing the low four bits of each channel,
// so #f0f0f0 and #fafafa both count as #f0f0f0. Fully transparent pixels are
// skipped and the palette colors are opaque. Ties are broken by hex value so
// the result is stable.
func Palette(img image.Image, count int, region *image.Rectangle) (*PaletteResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		if region.Empty() || !region.In(bounds) {
			return nil, fmt.Errorf("region %v is empty or outside image bounds %v", *region, bounds)
		}
		bounds = *region
	}

	counts := make(map[notation.Color]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := toColor(img.At(x, y))
			if c.A == 0 {
				continue
			}
			counts[notation.Opaque(c.R&0xf0, c.G&0xf0, c.B&0xf0)]++
			total++
		}
	}

	colors := make([]PaletteColor, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, PaletteColor{
			Color:      c,
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return notation.HexRGB.Format(colors[i].Color) < notation.HexRGB.Format(colors[j].Color)
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	for i := range colors {
		colors[i].Literals = Literals(colors[i].Color)
	}

	return &PaletteResult{Colors: colors, Pixels: total}, nil
}
