package scanner

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
)

func matchTexts(matches []Match) []string {
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Text
	}
	return texts
}

func TestScan_MixedLiterals(t *testing.T) {
	text := `
    "#fffccc"
    #aabbcc
    #fff
    rgb(255, 255, 255)
    `

	matches := Scan(text)

	want := []string{"#fffccc", "#aabbcc", "#fff", "rgb(255, 255, 255)"}
	if got := matchTexts(matches); !reflect.DeepEqual(got, want) {
		t.Fatalf("matches: got %q, want %q", got, want)
	}

	for i, m := range matches {
		if text[m.Start:m.End] != m.Text {
			t.Errorf("match %d: span [%d,%d) covers %q, want %q", i, m.Start, m.End, text[m.Start:m.End], m.Text)
		}
	}
}

func TestScan_NoShorthandInsideLongerHex(t *testing.T) {
	matches := Scan(`"#fffccc"`)

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %q", len(matches), matchTexts(matches))
	}
	if matches[0].Notation != notation.HexRGB {
		t.Errorf("notation: got %s, want hex-rgb", matches[0].Notation.Name())
	}
}

func TestScan_SourceOrder(t *testing.T) {
	// Registry order is hsl, rgb, rgba, #rgb, #rrggbb, #rrggbbaa; the text
	// lists them the other way round.
	text := "#11223344 #112233 #123 rgba(1, 2, 3, 0.5) rgb(1, 2, 3) hsl(1, 2, 3)"

	matches := Scan(text)

	wantNotations := []notation.Notation{
		notation.HexRGBA, notation.HexRGB, notation.HexRGBShorthand,
		notation.RGBA, notation.RGB, notation.HSL,
	}
	if len(matches) != len(wantNotations) {
		t.Fatalf("expected %d matches, got %d: %q", len(wantNotations), len(matches), matchTexts(matches))
	}
	for i, m := range matches {
		if m.Notation != wantNotations[i] {
			t.Errorf("match %d: got %s, want %s", i, m.Notation.Name(), wantNotations[i].Name())
		}
		if i > 0 && matches[i-1].Start >= m.Start {
			t.Errorf("match %d starts at %d, not after %d", i, m.Start, matches[i-1].Start)
		}
	}
}

func TestScan_Empty(t *testing.T) {
	if matches := Scan(""); len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
	if matches := Scan("no colors here, just #hashtags and rgb text"); len(matches) != 0 {
		t.Errorf("expected no matches, got %q", matchTexts(matches))
	}
}

func TestScan_Multibyte(t *testing.T) {
	text := "couleur préférée: #C0FFEE"

	matches := Scan(text)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if text[matches[0].Start:matches[0].End] != "#C0FFEE" {
		t.Errorf("span covers %q", text[matches[0].Start:matches[0].End])
	}
}

func TestScan_FormattedOutputRescans(t *testing.T) {
	colors := []notation.Color{
		{R: 255, G: 0, B: 0, A: 255},
		{R: 18, G: 52, B: 86, A: 255},
		{R: 200, G: 10, B: 150, A: 77},
	}

	for _, n := range notation.All() {
		for _, c := range colors {
			text := n.Format(c)
			matches := Scan(text)
			if len(matches) != 1 {
				t.Errorf("%s: %q scanned to %d matches", n.Name(), text, len(matches))
				continue
			}

			want := c
			if n != notation.HexRGBA && n != notation.RGBA {
				want.A = 255
			}
			got := matches[0].Color()
			if n == notation.RGBA {
				// one decimal of alpha
				want.A, got.A = 0, 0
			}
			if !within(got, want, 1) {
				t.Errorf("%s: %v -> %q -> %v", n.Name(), c, text, got)
			}
		}
	}
}

func TestMatch_Covers(t *testing.T) {
	m := Match{Start: 10, End: 14}

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"cursor at start", 10, 10, true},
		{"cursor inside", 12, 12, true},
		{"cursor at end", 14, 14, true},
		{"cursor before", 9, 9, false},
		{"cursor after", 15, 15, false},
		{"whole span", 10, 14, true},
		{"overhang left", 9, 12, false},
		{"overhang right", 12, 15, false},
		{"reversed", 13, 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Covers(tt.start, tt.end); got != tt.want {
				t.Errorf("Covers(%d, %d): got %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestCovering(t *testing.T) {
	text := "a: #fff; b: rgb(1, 2, 3);"
	matches := Scan(text)

	got := Covering(matches, 14, 14)
	if len(got) != 1 || got[0].Text != "rgb(1, 2, 3)" {
		t.Errorf("Covering at 14: got %q", matchTexts(got))
	}

	if got := Covering(matches, 0, 0); got != nil {
		t.Errorf("Covering at 0: expected nil, got %q", matchTexts(got))
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantText string
		wantErr  bool
	}{
		{"hex", "#fff", "#fff", false},
		{"padded", "  rgb(1, 2, 3)\n", "rgb(1, 2, 3)", false},
		{"upper", "HSL(0, 100, 50)", "HSL(0, 100, 50)", false},
		{"empty", "   ", "", true},
		{"two literals", "#fff #000", "", true},
		{"prefix text", "color: #fff", "", true},
		{"bad hex", "#ggg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseLiteral(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLiteral(%q) should fail", tt.input)
				}
				if !errors.Is(err, ErrNotALiteral) {
					t.Errorf("error should wrap ErrNotALiteral: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLiteral(%q) failed: %v", tt.input, err)
			}
			if m.Text != tt.wantText {
				t.Errorf("Text: got %q, want %q", m.Text, tt.wantText)
			}
		})
	}
}

func TestScan_LargeBuffer(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString(".a { color: #abc; background: rgba(0, 0, 0, 0.5); border-color: #aabbccdd }\n")
	}

	matches := Scan(b.String())
	if len(matches) != 1500 {
		t.Errorf("expected 1500 matches, got %d", len(matches))
	}
}

func within(a, b notation.Color, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol && d(a.A, b.A) <= tol
}
