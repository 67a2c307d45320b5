package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/ironsheep/specimen-bands/internal/imaging"
)

// ErrIO is returned when a report or output image cannot be written.
var ErrIO = errors.New("output I/O failed")

// WriteReport writes one line per band average to dest, replacing any
// existing content. Lines have the form "<index>, <R>, <G>, <B>" with the
// index starting at 0.
//
// # Errors
//
//   - Wraps ErrIO if dest cannot be created, written or closed
func WriteReport(dest string, averages []imaging.RGBColor) (err error) {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for i, a := range averages {
		if _, err := fmt.Fprintf(w, "%d, %d, %d, %d\n", i, a.R, a.G, a.B); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
