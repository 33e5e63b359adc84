package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-notation-mcp/internal/notation"
)

var (
	checkerLight = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	checkerDark  = color.NRGBA{R: 204, G: 204, B: 204, A: 255}
)

// SwatchResult contains a rendered color swatch.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Hex         string `json:"hex"` // The swatch color as #rrggbbaa
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Swatch renders c as a width x height PNG over a checkerboard whose squares
// are checker pixels wide.
func Swatch(c notation.Color, width, height, checker int) (*SwatchResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", width, height)
	}
	if checker <= 0 {
		return nil, fmt.Errorf("invalid checker size %d", checker)
	}

	img := renderSwatch(c, width, height, checker)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		Hex:         notation.HexRGBA.Format(c),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// renderSwatch composites c over a checkerboard.
func renderSwatch(c notation.Color, width, height, checker int) image.Image {
	bg := checkerboard(width, height, checker)
	fg := imaging.New(width, height, c.NRGBA())
	return blend.Normal(bg, fg)
}

// checkerboard draws one pixel per square and scales it up, which keeps the
// squares exact for any size.
func checkerboard(width, height, checker int) image.Image {
	cols := (width + checker - 1) / checker
	rows := (height + checker - 1) / checker

	cells := imaging.New(cols, rows, checkerLight)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if (x+y)%2 == 1 {
				cells.SetNRGBA(x, y, checkerDark)
			}
		}
	}

	board := imaging.Resize(cells, cols*checker, rows*checker, imaging.NearestNeighbor)
	return imaging.Crop(board, image.Rect(0, 0, width, height))
}
