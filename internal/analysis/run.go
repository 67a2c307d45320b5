package analysis

import (
	"fmt"
	"log"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/ironsheep/specimen-bands/internal/config"
	"github.com/ironsheep/specimen-bands/internal/imaging"
)

// Run analyzes the configured image, writes the CSV report and, if
// configured, saves the annotated image as PNG.
//
// Nothing is written when the analysis fails.
func Run(cfg *config.Config, presenter Presenter) (*Result, error) {
	a := NewAnalyzer(imaging.NewImageCache(), presenter)
	a.Verbose = cfg.Output.Verbose

	result, err := a.Analyze(cfg.Input.Path, cfg.Analysis.BandWidth)
	if err != nil {
		return nil, err
	}

	reportPath := cfg.ReportPath()
	if err := WriteReport(reportPath, result.Averages); err != nil {
		return nil, err
	}
	result.ReportPath = reportPath
	log.Printf("Wrote %d band averages to %s", len(result.Averages), reportPath)

	if p := cfg.Output.AnnotatedPath; p != "" {
		if err := imgio.Save(p, result.Annotated, imgio.PNGEncoder()); err != nil {
			return nil, fmt.Errorf("%w: saving annotated image: %w", ErrIO, err)
		}
		log.Printf("Saved annotated image to %s", p)
	}

	return result, nil
}
