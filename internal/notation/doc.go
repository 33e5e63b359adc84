// Package notation defines the fixed, ordered registry of textual color
// notations and the pure parse/format math behind each of them.
//
// Every notation converts to and from a single canonical Color: an
// (R, G, B, A) tuple of 8-bit channels. Converting between any two notations
// always pivots through that canonical form:
//
//	hsl(0, 100, 50)  --Parse-->  Color{255, 0, 0, 255}  --Format-->  #ff0000
//
// # Supported Notations
//
// The registry holds six notations in this order:
//   - HSL: hsl(h, s, l) with hue in degrees and saturation/lightness in percent
//   - RGB: rgb(r, g, b) with decimal channels
//   - RGBA: rgba(r, g, b, a) with alpha as a fraction in [0,1]
//   - HexRGBShorthand: #rgb
//   - HexRGB: #rrggbb
//   - HexRGBA: #rrggbbaa
//
// Keywords and hex digits are matched case-insensitively. Hex literals must
// end on a word boundary, so the 3-digit notation never matches the first
// half of a 6-digit literal.
//
// # Out-of-Range Values
//
// The grammars accept any run of digits, so text such as rgb(300, 0, 0) is
// recognized. Parse clamps every channel into [0,255] (and saturation,
// lightness and alpha into their ranges) so it never fails on recognized text.
//
// # Thread Safety
//
// The registry is built once during package initialization and never mutated.
// All notations are safe for concurrent use.
package notation
