package analysis

import (
	"fmt"
	"image"
	"log"

	"github.com/anthonynsimon/bild/clone"

	"github.com/ironsheep/specimen-bands/internal/imaging"
)

// Loader decodes the image stored at a path.
//
// *imaging.ImageCache satisfies Loader.
type Loader interface {
	Load(path string) (image.Image, error)
}

// Presenter shows an image for visual inspection.
//
// Present is fire-and-forget: the analyzer neither waits for nor manages
// whatever viewer the implementation starts. A non-nil error is logged and
// otherwise ignored.
type Presenter interface {
	Present(label string, img image.Image) error
}

// Labels passed to Presenter.Present.
const (
	LabelAnnotated = "annotated"
	LabelOriginal  = "original"
)

// BandResult describes one non-empty band.
type BandResult struct {
	// Index is the band's position in the result, starting at 0.
	Index int `json:"index"`

	// Ring is the distance bucket; it differs from Index when inner rings are empty.
	Ring int `json:"ring"`

	// InnerRadius and OuterRadius bound the band's distance from the center
	// (inner inclusive, outer exclusive).
	InnerRadius int `json:"inner_radius"`
	OuterRadius int `json:"outer_radius"`

	// Pixels is the number of coordinates in the band.
	Pixels int `json:"pixels"`

	// Average is the band's mean color.
	Average imaging.RGBColor `json:"average"`
}

// Result is the outcome of analyzing one image.
type Result struct {
	Path      string        `json:"path"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	BandWidth int           `json:"band_width"`
	Center    imaging.Point `json:"center"`
	Bands     []BandResult  `json:"bands"`

	// Averages holds one color per band, in band order.
	Averages []imaging.RGBColor `json:"-"`

	// Annotated is the normalized image with every band painted in its average.
	Annotated *image.RGBA `json:"-"`

	// ReportPath is set by Run once the CSV report is written.
	ReportPath string `json:"report_path,omitempty"`
}

// Analyzer runs the band analysis pipeline.
type Analyzer struct {
	loader    Loader
	presenter Presenter

	// Verbose logs each band's color and its distance from the previous band.
	Verbose bool
}

// NewAnalyzer creates an analyzer reading images through loader and showing
// results through presenter.
func NewAnalyzer(loader Loader, presenter Presenter) *Analyzer {
	return &Analyzer{
		loader:    loader,
		presenter: presenter,
	}
}

// Analyze partitions the image at path into bands bandWidth pixels wide,
// averages each band and paints the averages onto a copy of the image.
//
// The pipeline is linear:
//  1. Reject a non-positive bandWidth before touching the file
//  2. Load and normalize the image to opaque RGB
//  3. Partition, average each band, paint each band in band order
//  4. Present the annotated and original images
//
// # Errors
//
//   - Wraps imaging.ErrInvalidArgument if bandWidth <= 0
//   - Wraps imaging.ErrFileNotFound or imaging.ErrDecode if the image cannot be loaded
func (a *Analyzer) Analyze(path string, bandWidth int) (*Result, error) {
	if bandWidth <= 0 {
		return nil, fmt.Errorf("%w: band width must be positive, got %d", imaging.ErrInvalidArgument, bandWidth)
	}

	log.Printf("Loading %s", path)
	photo, err := a.loader.Load(path)
	if err != nil {
		return nil, err
	}
	rgb := imaging.ToRGB(photo)
	width, height := rgb.Bounds().Dx(), rgb.Bounds().Dy()

	log.Printf("Partitioning %dx%d image into %dpx bands", width, height, bandWidth)
	bands, err := imaging.PartitionBands(width, height, bandWidth)
	if err != nil {
		return nil, err
	}

	log.Printf("Averaging %d bands", len(bands))
	avgs := make([]imaging.RGBColor, len(bands))
	for i, b := range bands {
		avg, err := imaging.ColorAverage(rgb, b.Points)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", i, err)
		}
		avgs[i] = avg
	}

	log.Printf("Painting bands")
	annotated := clone.AsRGBA(rgb)
	for i, b := range bands {
		imaging.PaintBand(annotated, b.Points, avgs[i])
	}

	a.present(LabelAnnotated, annotated)
	a.present(LabelOriginal, photo)

	center := imaging.Center(width, height)
	result := &Result{
		Path:      path,
		Width:     width,
		Height:    height,
		BandWidth: bandWidth,
		Center:    imaging.Point{X: center.X, Y: center.Y},
		Bands:     make([]BandResult, len(bands)),
		Averages:  avgs,
		Annotated: annotated,
	}
	for i, b := range bands {
		inner, outer := b.Radii(bandWidth)
		result.Bands[i] = BandResult{
			Index:       i,
			Ring:        b.Ring,
			InnerRadius: inner,
			OuterRadius: outer,
			Pixels:      len(b.Points),
			Average:     avgs[i],
		}
		if a.Verbose {
			a.logBand(result.Bands, i)
		}
	}

	return result, nil
}

func (a *Analyzer) present(label string, img image.Image) {
	if a.presenter == nil {
		return
	}
	if err := a.presenter.Present(label, img); err != nil {
		log.Printf("Failed to present %s image: %v", label, err)
	}
}

func (a *Analyzer) logBand(bands []BandResult, i int) {
	b := bands[i]
	desc := imaging.DescribeColor(b.Average)
	if i == 0 {
		log.Printf("band %d r=[%d,%d) pixels=%d color=%s", i, b.InnerRadius, b.OuterRadius, b.Pixels, desc.Hex)
		return
	}
	log.Printf("band %d r=[%d,%d) pixels=%d color=%s dE=%.4f", i, b.InnerRadius, b.OuterRadius, b.Pixels, desc.Hex,
		imaging.ColorDistance(bands[i-1].Average, b.Average))
}
