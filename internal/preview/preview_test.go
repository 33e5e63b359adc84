package preview

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"math"
	"strconv"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
	"github.com/ironsheep/color-notation-mcp/internal/scanner"
)

func decodeSwatch(t *testing.T, result *SwatchResult) image.Image {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	return img
}

func TestSwatch(t *testing.T) {
	c := notation.Color{R: 255, G: 128, B: 64, A: 255}

	result, err := Swatch(c, 40, 20, 8)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}

	if result.Width != 40 || result.Height != 20 {
		t.Errorf("size: got %dx%d, want 40x20", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s", result.MimeType)
	}
	if result.Hex != "#ff8040ff" {
		t.Errorf("Hex: got %s, want #ff8040ff", result.Hex)
	}

	img := decodeSwatch(t, result)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Fatalf("decoded size: got %v", img.Bounds())
	}

	// An opaque color hides the checkerboard entirely.
	for _, p := range []image.Point{{0, 0}, {12, 3}, {39, 19}} {
		r, g, b, _ := img.At(p.X, p.Y).RGBA()
		if !near(r>>8, 255) || !near(g>>8, 128) || !near(b>>8, 64) {
			t.Errorf("pixel %v: got (%d,%d,%d), want (255,128,64)", p, r>>8, g>>8, b>>8)
		}
	}
}

func TestSwatch_Transparent(t *testing.T) {
	result, err := Swatch(notation.Color{R: 255, G: 0, B: 0, A: 0}, 16, 16, 8)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}
	img := decodeSwatch(t, result)

	// A fully transparent color shows the checkerboard.
	light, _, _, _ := img.At(2, 2).RGBA()
	dark, _, _, _ := img.At(10, 2).RGBA()
	if !near(light>>8, 255) {
		t.Errorf("light square: got %d, want 255", light>>8)
	}
	if !near(dark>>8, 204) {
		t.Errorf("dark square: got %d, want 204", dark>>8)
	}
}

func TestSwatch_InvalidSize(t *testing.T) {
	c := notation.Opaque(0, 0, 0)

	tests := []struct {
		name                   string
		width, height, checker int
	}{
		{"zero width", 0, 10, 4},
		{"negative height", 10, -1, 4},
		{"zero checker", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Swatch(c, tt.width, tt.height, tt.checker); err == nil {
				t.Error("Swatch should fail")
			}
		})
	}
}

func TestCheckerboard(t *testing.T) {
	// 10 is not a multiple of 4, so the last column of squares is cut off.
	img := checkerboard(10, 6, 4)

	if img.Bounds() != image.Rect(0, 0, 10, 6) {
		t.Fatalf("bounds: got %v", img.Bounds())
	}

	tests := []struct {
		x, y     int
		wantDark bool
	}{
		{0, 0, false},
		{3, 3, false},
		{4, 0, true},
		{0, 4, true},
		{5, 5, false},
		{9, 0, false},
	}
	for _, tt := range tests {
		r, _, _, _ := img.At(tt.x, tt.y).RGBA()
		isDark := r>>8 == 204
		if isDark != tt.wantDark {
			t.Errorf("(%d,%d): dark=%v, want %v", tt.x, tt.y, isDark, tt.wantDark)
		}
	}
}

func TestCompare(t *testing.T) {
	black := notation.Opaque(0, 0, 0)
	white := notation.Opaque(255, 255, 255)

	cmp := Compare(black, white)

	if cmp.ContrastRatio != 21 {
		t.Errorf("ContrastRatio: got %v, want 21", cmp.ContrastRatio)
	}
	if cmp.WCAG != "AAA" {
		t.Errorf("WCAG: got %s, want AAA", cmp.WCAG)
	}
	if cmp.A.Hex != "#000000" || cmp.B.Hex != "#ffffff" {
		t.Errorf("Hex: got %s / %s", cmp.A.Hex, cmp.B.Hex)
	}
	if cmp.A.Luminance != 0 || cmp.B.Luminance != 1 {
		t.Errorf("Luminance: got %v / %v", cmp.A.Luminance, cmp.B.Luminance)
	}
	if cmp.Distance <= 0.9 {
		t.Errorf("Distance: got %v, expected close to 1", cmp.Distance)
	}
}

func TestCompare_Identical(t *testing.T) {
	c := notation.Opaque(18, 52, 86)

	cmp := Compare(c, c)
	if cmp.Distance != 0 {
		t.Errorf("Distance: got %v, want 0", cmp.Distance)
	}
	if cmp.ContrastRatio != 1 {
		t.Errorf("ContrastRatio: got %v, want 1", cmp.ContrastRatio)
	}
	if cmp.WCAG != "fail" {
		t.Errorf("WCAG: got %s, want fail", cmp.WCAG)
	}
}

func TestCompare_Symmetric(t *testing.T) {
	a := notation.Opaque(255, 0, 0)
	b := notation.Opaque(0, 0, 255)

	ab, ba := Compare(a, b), Compare(b, a)
	if ab.ContrastRatio != ba.ContrastRatio {
		t.Errorf("contrast not symmetric: %v vs %v", ab.ContrastRatio, ba.ContrastRatio)
	}
	if math.Abs(ab.Distance-ba.Distance) > 1e-4 {
		t.Errorf("distance not symmetric: %v vs %v", ab.Distance, ba.Distance)
	}
}

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{21, "AAA"},
		{7, "AAA"},
		{6.99, "AA"},
		{4.5, "AA"},
		{3, "AA-large"},
		{2.99, "fail"},
		{1, "fail"},
	}

	for _, tt := range tests {
		if got := wcagLevel(tt.ratio); got != tt.want {
			t.Errorf("wcagLevel(%v): got %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

// The HSL notation and go-colorful implement the same conversion; they must
// agree to within a unit per channel.
func TestHSLAgreesWithColorful(t *testing.T) {
	colors := []notation.Color{
		notation.Opaque(255, 0, 0),
		notation.Opaque(18, 52, 86),
		notation.Opaque(255, 128, 64),
		notation.Opaque(1, 254, 127),
		notation.Opaque(200, 10, 150),
		notation.Opaque(77, 77, 78),
	}

	for _, c := range colors {
		text := notation.HSL.Format(c)
		m, err := scanner.ParseLiteral(text)
		if err != nil {
			t.Fatalf("%q did not parse: %v", text, err)
		}
		var h, s, l float64
		for i, g := range m.Groups {
			v := parseFloat(t, g)
			switch i {
			case 0:
				h = v
			case 1:
				s = v / 100
			case 2:
				l = v / 100
			}
		}

		want := colorful.Hsl(h, s, l)
		got := m.Color()
		wr, wg, wb := want.RGB255()
		if !near(uint32(got.R), uint32(wr)) || !near(uint32(got.G), uint32(wg)) || !near(uint32(got.B), uint32(wb)) {
			t.Errorf("%s: notation gives %v, go-colorful gives (%d, %d, %d)", text, got, wr, wg, wb)
		}
	}
}

func parseFloat(t *testing.T, s string) float64 {
	t.Helper()

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("bad number %q: %v", s, err)
	}
	return v
}

func near(a, b uint32) bool {
	if a > b {
		return a-b <= 1
	}
	return b-a <= 1
}
