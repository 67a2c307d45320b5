package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrEmptyInput is returned when a color average is requested over no pixels.
var ErrEmptyInput = errors.New("empty coordinate set")

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// NRGBA returns c as an opaque color.NRGBA.
func (c RGBColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// ColorAverage computes the mean color of img over coords.
//
// Each channel is summed independently and floor-divided by the number of
// coordinates. Coordinates are read as given with no bounds filtering; the
// caller guarantees they lie inside the image. Alpha is ignored.
//
// # Errors
//
//   - Wraps ErrEmptyInput if coords is empty
func ColorAverage(img image.Image, coords []image.Point) (RGBColor, error) {
	if len(coords) == 0 {
		return RGBColor{}, fmt.Errorf("color average: %w", ErrEmptyInput)
	}

	var r, g, b uint64
	if nrgba, ok := img.(*image.NRGBA); ok {
		for _, p := range coords {
			c := nrgba.NRGBAAt(p.X, p.Y)
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
		}
	} else {
		for _, p := range coords {
			c := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
		}
	}

	n := uint64(len(coords))
	return RGBColor{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}, nil
}

// DescribeColor returns c as hex, RGB and HSL.
func DescribeColor(c RGBColor) ColorResult {
	cc := toColorful(c)
	h, s, l := cc.Hsl()
	return ColorResult{
		Hex: strings.ToUpper(cc.Hex()),
		RGB: c,
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
	}
}

// ColorDistance returns the CIEDE2000 perceptual distance between a and b.
// Identical colors have distance 0; black to white is about 1.
func ColorDistance(a, b RGBColor) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

func toColorful(c RGBColor) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
