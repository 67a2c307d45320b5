// Package analysis runs radial band analysis on a specimen image.
//
// An Analyzer loads an image, splits it into concentric bands around its
// center, averages each band's color and paints the averages back onto a
// copy of the image. The original and annotated images are handed to a
// Presenter, and the per-band averages are returned to the caller.
//
// # Pipeline
//
// Every step runs synchronously and in order. There are no retries: the first
// error aborts the run and is returned unchanged. Writes of out-of-bounds
// pixels during painting are the only tolerated failure.
//
// # Reports
//
// WriteReport serializes averages as comma-space separated lines:
//
//	0, 255, 0, 0
//	1, 254, 3, 0
//
// Run ties analysis and reporting together for a config.Config, writing the
// report to <input>_analysis.csv unless another path is configured.
package analysis
