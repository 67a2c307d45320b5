package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrInvalidArgument is returned for a non-positive band width or negative
// image dimensions.
var ErrInvalidArgument = errors.New("invalid argument")

// Band is a set of pixel coordinates at approximately the same distance from
// the image center.
//
// Ring is the distance bucket the band was built from: every point lies at a
// distance d from the center with floor(d / bandWidth) == Ring. Rings with no
// points are dropped by PartitionBands, so Ring can be larger than the band's
// position in the returned slice.
type Band struct {
	Ring   int
	Points []image.Point
}

// Radii returns the inner (inclusive) and outer (exclusive) distance from the
// center covered by the band.
func (b Band) Radii(bandWidth int) (inner, outer int) {
	return b.Ring * bandWidth, (b.Ring + 1) * bandWidth
}

// Center returns the distance origin for an image of the given size.
func Center(width, height int) image.Point {
	return image.Point{X: width / 2, Y: height / 2}
}

// PartitionBands groups pixel coordinates into concentric bands of width
// bandWidth around the center of a width x height image.
//
// Candidates are the ordered pairs (x, y) with x and y in [0, min(width, height))
// and x != y. Points on the main diagonal of that square are never assigned
// to a band.
//
// Bands are returned in increasing distance order. Empty bands are omitted.
// Points within a band are in generation order (x major, y minor), which
// callers must not rely on.
//
// # Errors
//
//   - Wraps ErrInvalidArgument if bandWidth <= 0 or a dimension is negative
func PartitionBands(width, height, bandWidth int) ([]Band, error) {
	if bandWidth <= 0 {
		return nil, fmt.Errorf("%w: band width must be positive, got %d", ErrInvalidArgument, bandWidth)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidArgument, width, height)
	}

	maxDim := min(width, height)
	center := Center(width, height)
	bw := float64(bandWidth)

	// Corner distances can exceed maxDim, and the center falls outside the
	// square for very elongated images, so rings grows on demand.
	rings := make([][]image.Point, maxDim/bandWidth)

	for x := 0; x < maxDim; x++ {
		dx := float64(x - center.X)
		for y := 0; y < maxDim; y++ {
			if x == y {
				continue
			}
			dy := float64(y - center.Y)
			ring := int(math.Sqrt(dx*dx+dy*dy) / bw)
			for ring >= len(rings) {
				rings = append(rings, nil)
			}
			rings[ring] = append(rings[ring], image.Point{X: x, Y: y})
		}
	}

	bands := make([]Band, 0, len(rings))
	for i, pts := range rings {
		if len(pts) == 0 {
			continue
		}
		bands = append(bands, Band{Ring: i, Points: pts})
	}
	return bands, nil
}
