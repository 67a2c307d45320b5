package analysis

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/specimen-bands/internal/config"
	"github.com/ironsheep/specimen-bands/internal/imaging"
)

func TestWriteReport(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.csv")
	avgs := []imaging.RGBColor{{R: 255}, {R: 12, G: 34, B: 56}, {R: 0, G: 0, B: 0}}

	if err := WriteReport(dest, avgs); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	want := "0, 255, 0, 0\n1, 12, 34, 56\n2, 0, 0, 0\n"
	if string(got) != want {
		t.Errorf("report:\ngot  %q\nwant %q", got, want)
	}
}

func TestWriteReport_Truncates(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.csv")
	if err := os.WriteFile(dest, []byte("stale content that is much longer than the new report\n"), 0644); err != nil {
		t.Fatalf("failed to seed report: %v", err)
	}

	if err := WriteReport(dest, []imaging.RGBColor{{R: 1, G: 2, B: 3}}); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	got, _ := os.ReadFile(dest)
	if string(got) != "0, 1, 2, 3\n" {
		t.Errorf("report: got %q", got)
	}
}

func TestWriteReport_Empty(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteReport(dest, nil); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("report not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size: got %d, want 0", info.Size())
	}
}

func TestWriteReport_Unwritable(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "no", "such", "dir", "report.csv")
	err := WriteReport(dest, []imaging.RGBColor{{}})
	if !errors.Is(err, ErrIO) {
		t.Errorf("got %v, want ErrIO", err)
	}
}

func TestRun_SolidRed(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, solidImage(10, 10, color.RGBA{255, 0, 0, 255}))

	cfg := config.DefaultConfig()
	cfg.Input.Path = path
	cfg.Analysis.BandWidth = 5
	cfg.Output.AnnotatedPath = filepath.Join(dir, "annotated.png")
	p := &recordingPresenter{}

	res, err := Run(cfg, p)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.ReportPath != path+"_analysis.csv" {
		t.Errorf("ReportPath: got %q", res.ReportPath)
	}
	got, err := os.ReadFile(res.ReportPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if want := "0, 255, 0, 0\n1, 255, 0, 0\n"; string(got) != want {
		t.Errorf("report:\ngot  %q\nwant %q", got, want)
	}

	annotated, err := imaging.NewImageCache().Load(cfg.Output.AnnotatedPath)
	if err != nil {
		t.Fatalf("annotated image not readable: %v", err)
	}
	if annotated.Bounds().Dx() != 10 || annotated.Bounds().Dy() != 10 {
		t.Errorf("annotated size: got %v", annotated.Bounds())
	}
	if len(p.calls) != 2 {
		t.Errorf("got %d Present calls, want 2", len(p.calls))
	}
}

func TestRun_MissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Input.Path = filepath.Join(dir, "missing.png")
	cfg.Output.AnnotatedPath = filepath.Join(dir, "annotated.png")

	_, err := Run(cfg, nil)
	if !errors.Is(err, imaging.ErrFileNotFound) {
		t.Fatalf("got %v, want ErrFileNotFound", err)
	}
	if _, err := os.Stat(cfg.ReportPath()); !os.IsNotExist(err) {
		t.Errorf("report should not exist, stat: %v", err)
	}
	if _, err := os.Stat(cfg.Output.AnnotatedPath); !os.IsNotExist(err) {
		t.Errorf("annotated image should not exist, stat: %v", err)
	}
}

func TestRun_InvalidBandWidth(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Path = filepath.Join(t.TempDir(), "missing.png")
	cfg.Analysis.BandWidth = 0

	_, err := Run(cfg, nil)
	if !errors.Is(err, imaging.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestRun_UnwritableReport(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Input.Path = writeTestImage(t, dir, solidImage(6, 6, color.Black))
	cfg.Output.ReportPath = filepath.Join(dir, "missing-dir", "report.csv")

	_, err := Run(cfg, nil)
	if !errors.Is(err, ErrIO) {
		t.Errorf("got %v, want ErrIO", err)
	}
}
