// Package preview renders and compares canonical colors.
//
// # Swatches
//
// Swatch paints a color over a light/dark checkerboard so that translucent
// colors are visible, and returns the result as a base64-encoded PNG ready to
// be embedded in a tool response.
//
// # Comparison
//
// Compare reports the perceptual CIEDE2000 distance between two colors and
// their WCAG contrast ratio. Alpha is ignored: translucent colors are compared
// as if they were opaque.
package preview
