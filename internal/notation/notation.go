package notation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Occurrence is one recognized literal in a text buffer.
type Occurrence struct {
	Text   string   // The matched literal as it appears in the text
	Groups []string // Captured submatches, in grammar order
	Start  int      // Byte offset of the first byte (inclusive)
	End    int      // Byte offset after the last byte (exclusive)
}

// Notation is a textual grammar for expressing a color.
//
// Parse must only be given groups produced by the same notation's Recognize.
// Format must produce text that Recognize matches again (the 3-digit hex
// notation falls back to 6 digits when the color has no shorthand).
type Notation interface {
	// Name returns the stable identifier of the notation, e.g. "hex-rgb".
	Name() string

	// Recognize returns every non-overlapping occurrence in text, left to right.
	Recognize(text string) []Occurrence

	// Parse converts captured groups to the canonical color.
	Parse(groups []string) Color

	// Format renders c in this notation.
	Format(c Color) string
}

// pattern is a Notation backed by a regular expression.
type pattern struct {
	name   string
	re     *regexp.Regexp
	parse  func(groups []string) Color
	format func(c Color) string
}

func (p *pattern) Name() string { return p.name }

func (p *pattern) Recognize(text string) []Occurrence {
	locs := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	out := make([]Occurrence, 0, len(locs))
	for _, loc := range locs {
		groups := make([]string, 0, len(loc)/2-1)
		for i := 2; i < len(loc); i += 2 {
			groups = append(groups, text[loc[i]:loc[i+1]])
		}
		out = append(out, Occurrence{
			Text:   text[loc[0]:loc[1]],
			Groups: groups,
			Start:  loc[0],
			End:    loc[1],
		})
	}
	return out
}

func (p *pattern) Parse(groups []string) Color { return p.parse(groups) }

func (p *pattern) Format(c Color) string { return p.format(c) }

func (p *pattern) String() string { return p.name }

const (
	integer = `(\d+)`
	decimal = `(\d+(?:\.\d+)?)`
	sep     = `\s*,\s*`
	hex1    = `([0-9a-f])`
	hex2    = `([0-9a-f]{2})`
)

// HSL matches hsl(h, s, l) with hue in degrees and saturation/lightness in
// percent, e.g. hsl(0, 100, 50).
var HSL Notation = &pattern{
	name: "hsl",
	re:   regexp.MustCompile(`(?i)hsl\(\s*` + decimal + sep + decimal + sep + decimal + `\s*\)`),
	parse: func(groups []string) Color {
		r, g, b := hslToRGB(parseDecimal(groups[0]), parseDecimal(groups[1]), parseDecimal(groups[2]))
		return Opaque(r, g, b)
	},
	format: func(c Color) string {
		h, s, l := rgbToHSL(c.R, c.G, c.B)
		h = roundHundredths(h)
		if h >= 360 {
			h = 0
		}
		return "hsl(" + joinDecimals(h, roundHundredths(s), roundHundredths(l)) + ")"
	},
}

// RGB matches rgb(r, g, b), e.g. rgb(255, 0, 0).
var RGB Notation = &pattern{
	name: "rgb",
	re:   regexp.MustCompile(`(?i)rgb\(\s*` + integer + sep + integer + sep + integer + `\s*\)`),
	parse: func(groups []string) Color {
		return Opaque(parseDecimalChannel(groups[0]), parseDecimalChannel(groups[1]), parseDecimalChannel(groups[2]))
	},
	format: func(c Color) string {
		return "rgb(" + joinChannels(c.R, c.G, c.B) + ")"
	},
}

// RGBA matches rgba(r, g, b, a) with alpha as a fraction, e.g.
// rgba(255, 0, 0, 0.5). Alpha is scaled by 255 and rounded on parse and
// printed with one decimal place on format.
var RGBA Notation = &pattern{
	name: "rgba",
	re:   regexp.MustCompile(`(?i)rgba\(\s*` + integer + sep + integer + sep + integer + sep + decimal + `\s*\)`),
	parse: func(groups []string) Color {
		alpha := clamp(parseDecimal(groups[3]), 0, 1)
		return Color{
			R: parseDecimalChannel(groups[0]),
			G: parseDecimalChannel(groups[1]),
			B: parseDecimalChannel(groups[2]),
			A: channel(alpha * 255),
		}
	},
	format: func(c Color) string {
		alpha := strconv.FormatFloat(float64(c.A)/255, 'f', 1, 64)
		return "rgba(" + joinChannels(c.R, c.G, c.B) + ", " + alpha + ")"
	},
}

// HexRGBShorthand matches #rgb, e.g. #f00.
//
// Format only collapses to three digits when every channel is a repeated hex
// pair (ff, cc, 00, ...). Any other color is written as #rrggbb.
var HexRGBShorthand Notation = &pattern{
	name: "hex-rgb-shorthand",
	re:   regexp.MustCompile(`(?i)#` + hex1 + hex1 + hex1 + `\b`),
	parse: func(groups []string) Color {
		return Opaque(
			parseHexChannel(strings.Repeat(groups[0], 2)),
			parseHexChannel(strings.Repeat(groups[1], 2)),
			parseHexChannel(strings.Repeat(groups[2], 2)),
		)
	},
	format: func(c Color) string {
		if !HasShorthand(c) {
			return formatHex(c.R, c.G, c.B)
		}
		return "#" + strconv.FormatUint(uint64(c.R&0xf), 16) +
			strconv.FormatUint(uint64(c.G&0xf), 16) +
			strconv.FormatUint(uint64(c.B&0xf), 16)
	},
}

// HexRGB matches #rrggbb, e.g. #ff0000.
var HexRGB Notation = &pattern{
	name: "hex-rgb",
	re:   regexp.MustCompile(`(?i)#` + hex2 + hex2 + hex2 + `\b`),
	parse: func(groups []string) Color {
		return Opaque(parseHexChannel(groups[0]), parseHexChannel(groups[1]), parseHexChannel(groups[2]))
	},
	format: func(c Color) string {
		return formatHex(c.R, c.G, c.B)
	},
}

// HexRGBA matches #rrggbbaa, e.g. #ff000080.
var HexRGBA Notation = &pattern{
	name: "hex-rgba",
	re:   regexp.MustCompile(`(?i)#` + hex2 + hex2 + hex2 + hex2 + `\b`),
	parse: func(groups []string) Color {
		return Color{
			R: parseHexChannel(groups[0]),
			G: parseHexChannel(groups[1]),
			B: parseHexChannel(groups[2]),
			A: parseHexChannel(groups[3]),
		}
	},
	format: func(c Color) string {
		return formatHex(c.R, c.G, c.B, c.A)
	},
}

// registry is the declared order of notations. It also fixes the order in
// which conversions are listed downstream.
var registry = []Notation{
	HSL,
	RGB,
	RGBA,
	HexRGBShorthand,
	HexRGB,
	HexRGBA,
}

// All returns the registered notations in declared order.
//
// The returned slice is a copy; the notations themselves are shared.
func All() []Notation {
	out := make([]Notation, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the notation registered under name.
func Lookup(name string) (Notation, bool) {
	for _, n := range registry {
		if n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// HasShorthand reports whether every RGB channel of c is a repeated hex pair,
// i.e. whether c can be written as #rgb.
func HasShorthand(c Color) bool {
	return c.R>>4 == c.R&0xf && c.G>>4 == c.G&0xf && c.B>>4 == c.B&0xf
}

func formatHex(channels ...uint8) string {
	var b strings.Builder
	b.Grow(1 + 2*len(channels))
	b.WriteByte('#')
	for _, ch := range channels {
		if ch < 0x10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatUint(uint64(ch), 16))
	}
	return b.String()
}

func joinChannels(channels ...uint8) string {
	parts := make([]string, len(channels))
	for i, ch := range channels {
		parts[i] = strconv.Itoa(int(ch))
	}
	return strings.Join(parts, ", ")
}

func joinDecimals(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func roundHundredths(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseDecimal parses a digits[.digits] group. The grammar guarantees the
// syntax; only overflow can fail, which yields +Inf and is clamped later.
func parseDecimal(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseDecimalChannel(s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > 255 {
		return 255
	}
	return uint8(v)
}

func parseHexChannel(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}
