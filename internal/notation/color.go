package notation

import (
	"fmt"
	"image/color"
	"math"
)

// Color is the canonical interchange color shared by every notation.
//
// Channels are 8-bit, non-premultiplied. Notations without an alpha channel
// parse to A = 255.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha component (0 = transparent, 255 = opaque)
}

// Opaque returns a fully opaque Color.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA returns c as a standard library non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// rgbToHSL converts 8-bit RGB values to hue in degrees [0,360) and saturation
// and lightness in percent.
//
// The hue is picked by whichever channel is the maximum:
//   - red:   (g-b)/delta
//   - green: 2 + (b-r)/delta
//   - blue:  4 + (r-g)/delta
//
// scaled by 60 and wrapped into [0,360). Gray colors have zero hue and
// saturation.
func rgbToHSL(r, g, b uint8) (h, s, l float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	l = (max + min) / 2

	if max == min {
		return 0, 0, l * 100
	}

	switch max {
	case rf:
		h = (gf - bf) / delta
	case gf:
		h = 2 + (bf-rf)/delta
	default:
		h = 4 + (rf-gf)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	if l <= 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	return h, s * 100, l * 100
}

// hslToRGB converts hue (degrees) and saturation/lightness (percent) to 8-bit
// RGB using the two-threshold algorithm. Each channel is rounded to the
// nearest integer.
//
// Saturation and lightness are clamped to [0,100]; hue wraps modulo 360.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	h = wrapHue(h) / 360
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100

	if s == 0 {
		v := channel(l * 255)
		return v, v, v
	}

	var t2 float64
	if l < 0.5 {
		t2 = l * (1 + s)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2

	var rgb [3]uint8
	for i := range rgb {
		// red leads the hue by a third, blue trails it by a third
		t3 := h + float64(1-i)/3
		if t3 < 0 {
			t3++
		}
		if t3 > 1 {
			t3--
		}

		var v float64
		switch {
		case 6*t3 < 1:
			v = t1 + (t2-t1)*6*t3
		case 2*t3 < 1:
			v = t2
		case 3*t3 < 2:
			v = t1 + (t2-t1)*(2.0/3-t3)*6
		default:
			v = t1
		}
		rgb[i] = channel(v * 255)
	}

	return rgb[0], rgb[1], rgb[2]
}

// channel rounds v to the nearest integer and clamps it to [0,255].
func channel(v float64) uint8 {
	return uint8(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
