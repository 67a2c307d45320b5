package imaging

import (
	"image"
	"image/draw"
)

// PaintBand sets every pixel of img at coords to c.
//
// Coordinates outside img's bounds are skipped. The partition geometry is a
// square that need not match the image, so skipped points are normal.
func PaintBand(img draw.Image, coords []image.Point, c RGBColor) {
	bounds := img.Bounds()
	fill := c.NRGBA()
	for _, p := range coords {
		if !p.In(bounds) {
			continue
		}
		img.Set(p.X, p.Y, fill)
	}
}
