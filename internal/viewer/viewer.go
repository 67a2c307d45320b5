// Package viewer provides Presenter implementations for analysis results.
//
// System hands images to the platform's default image viewer without waiting
// for it. Directory writes images to disk for headless runs, and Nop discards
// them.
package viewer

import (
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/anthonynsimon/bild/imgio"
)

// System opens images in the platform's default viewer.
type System struct {
	// TempDir holds the PNG files handed to the viewer. Empty means os.TempDir().
	TempDir string

	command func(path string) *exec.Cmd
}

// NewSystem creates a System presenter for the current platform.
func NewSystem() *System {
	return &System{command: openCommand}
}

// Present writes img to a temporary PNG and starts the viewer on it.
//
// The viewer process is released immediately; its lifetime is not managed
// and the temporary file is left for the viewer to read.
func (s *System) Present(label string, img image.Image) error {
	f, err := os.CreateTemp(s.TempDir, "specimen-"+label+"-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	f.Close()

	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s image: %w", label, err)
	}

	cmd := s.command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start viewer: %w", err)
	}
	return cmd.Process.Release()
}

// openCommand returns the command that opens path with the desktop's default
// application.
func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Directory writes each presented image to Dir as <label>.png.
type Directory struct {
	Dir string
}

// Present saves img, creating Dir if needed.
func (d Directory) Present(label string, img image.Image) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", d.Dir, err)
	}
	path := filepath.Join(d.Dir, label+".png")
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Nop discards presented images.
type Nop struct{}

// Present does nothing.
func (Nop) Present(string, image.Image) error { return nil }
