// Package imaging provides the image operations behind radial band analysis.
//
// This package loads specimen images, normalizes them to opaque RGB, splits
// pixel coordinates into concentric distance bands around the image center,
// averages the color of each band and repaints bands in a given color.
// All operations work with standard Go image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y increases downward.
//
// # Bands
//
// For an image of size W x H the center is (W/2, H/2) with integer division.
// Candidate coordinates are the pairs (x, y) drawn from [0, min(W, H)) with
// x != y; each is assigned to ring floor(distance / bandWidth). Rings with no
// points are dropped and the rest are returned in increasing distance order.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless; PaintBand mutates its destination, so callers sharing an image
// must synchronize.
//
// # Errors
//
// Failures wrap one of the package sentinels and can be tested with errors.Is:
//   - ErrInvalidArgument: non-positive band width
//   - ErrFileNotFound: image file cannot be opened
//   - ErrDecode: file is not a supported image
//   - ErrEmptyInput: averaging over no coordinates
package imaging
