// Package report serializes a merged streak histogram to disk and derives
// the summary statistics shown after a run.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	apperrors "github.com/agbru/coinflip/internal/errors"
	"github.com/agbru/coinflip/internal/streak"
)

// ErrOutputExists is returned when the destination path already names an
// existing file. The simulator never overwrites results.
var ErrOutputExists = errors.New("destination already exists")

// Header is the first row of every results file.
var Header = []string{"chain_length", "heads", "tails"}

// CheckDestination verifies that path does not already name an existing file.
// The application calls this before any simulation work starts so a doomed
// run fails fast instead of flipping coins for nothing.
func CheckDestination(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s - select a new destination", ErrOutputExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return apperrors.OutputError{Path: path, Cause: err}
	}
	return nil
}

// WriteCSV writes the histogram to path as a comma-separated table: the
// header row followed by one row per chain length from 1 to the maximum key
// present, inclusive, with missing lengths reported as 0,0. The file is
// created exclusively; an existing file is never overwritten.
func WriteCSV(path string, h streak.Histogram) error {
	if err := CheckDestination(path); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s - select a new destination", ErrOutputExists, path)
		}
		return apperrors.OutputError{Path: path, Cause: err}
	}

	if err := writeRows(f, h); err != nil {
		f.Close()
		return apperrors.OutputError{Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return apperrors.OutputError{Path: path, Cause: err}
	}
	return nil
}

// writeRows encodes the header and all rows in ascending chain-length order.
func writeRows(w io.Writer, h streak.Histogram) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for length := 1; length <= h.MaxChain(); length++ {
		b := h[length]
		row := []string{
			strconv.Itoa(length),
			strconv.FormatUint(b.Heads, 10),
			strconv.FormatUint(b.Tails, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
