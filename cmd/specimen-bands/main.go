package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/specimen-bands/internal/analysis"
	"github.com/ironsheep/specimen-bands/internal/config"
	"github.com/ironsheep/specimen-bands/internal/server"
	"github.com/ironsheep/specimen-bands/internal/viewer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol in serve mode)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("specimen-bands %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fs, _ := newFlagSet()
			usage(os.Stdout, fs)
			return
		case "serve":
			if os.Getenv("SPECIMEN_BANDS_LOG_LEVEL") == "debug" {
				log.Printf("specimen-bands MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
			}
			if err := server.New(Version).Run(); err != nil {
				log.Fatalf("Server error: %v", err)
			}
			return
		}
	}

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}

// options holds the command-line flags for an analysis run.
type options struct {
	configPath string
	initConfig string
	input      string
	bandWidth  int
	report     string
	annotated  string
	noShow     bool
	presentDir string
	verbose    bool
}

func newFlagSet() (*flag.FlagSet, *options) {
	o := &options{}
	fs := flag.NewFlagSet("specimen-bands", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "specimen-bands.yaml", "YAML configuration file (optional)")
	fs.StringVar(&o.initConfig, "init-config", "", "Write a default configuration file to this path and exit")
	fs.StringVar(&o.input, "input", "", "Image to analyze (overrides input.path)")
	fs.IntVar(&o.bandWidth, "band-width", 0, "Band width in pixels (overrides analysis.bandWidth, default 10)")
	fs.StringVar(&o.report, "report", "", "CSV report path (default <input>_analysis.csv)")
	fs.StringVar(&o.annotated, "annotated", "", "Save the annotated image as PNG to this path")
	fs.BoolVar(&o.noShow, "no-show", false, "Do not open the images in a viewer")
	fs.StringVar(&o.presentDir, "present-dir", "", "Write the original and annotated images here instead of opening a viewer")
	fs.BoolVar(&o.verbose, "verbose", false, "Log per-band colors")
	fs.Usage = func() { usage(fs.Output(), fs) }
	return fs, o
}

func run(args []string, stdout io.Writer) error {
	fs, o := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if o.initConfig != "" {
		if err := config.CreateDefaultConfigFile(o.initConfig); err != nil {
			return err
		}
		log.Printf("Wrote default configuration to %s", o.initConfig)
		return nil
	}

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	// Flags override the file; a bare positional argument is the input path
	if fs.NArg() > 0 {
		cfg.Input.Path = fs.Arg(0)
	}
	if o.input != "" {
		cfg.Input.Path = o.input
	}
	if o.bandWidth != 0 {
		cfg.Analysis.BandWidth = o.bandWidth
	}
	if o.report != "" {
		cfg.Output.ReportPath = o.report
	}
	if o.annotated != "" {
		cfg.Output.AnnotatedPath = o.annotated
	}
	if o.noShow {
		cfg.Output.Show = false
	}
	if o.presentDir != "" {
		cfg.Output.PresentDir = o.presentDir
	}
	if o.verbose || os.Getenv("SPECIMEN_BANDS_LOG_LEVEL") == "debug" {
		cfg.Output.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := analysis.Run(cfg, selectPresenter(cfg))
	if err != nil {
		return err
	}

	for i, avg := range result.Averages {
		fmt.Fprintf(stdout, "%d, %d, %d, %d\n", i, avg.R, avg.G, avg.B)
	}
	return nil
}

// selectPresenter picks where the original and annotated images go.
func selectPresenter(cfg *config.Config) analysis.Presenter {
	switch {
	case cfg.Output.PresentDir != "":
		return viewer.Directory{Dir: cfg.Output.PresentDir}
	case cfg.Output.Show:
		return viewer.NewSystem()
	default:
		return viewer.Nop{}
	}
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "specimen-bands - average the color of concentric bands around an image's center")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  specimen-bands [options] [image]   Analyze an image")
	fmt.Fprintln(w, "  specimen-bands serve               Run as an MCP server on stdin/stdout")
	fmt.Fprintln(w, "  specimen-bands --version           Print version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  SPECIMEN_BANDS_LOG_LEVEL=debug    Enable debug logging")
}
