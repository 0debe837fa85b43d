// Package input reads card numbers from text, CSV and Excel files for bulk classification.
package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/allisson/cardid/internal/errors"
)

// ErrUnsupportedFormat indicates a file whose extension has no reader.
var ErrUnsupportedFormat = apperrors.Wrap(apperrors.ErrInvalidInput, "unsupported input format")

// ErrInvalidColumn indicates a negative column index.
var ErrInvalidColumn = apperrors.Wrap(apperrors.ErrInvalidInput, "column must not be negative")

// Entry is one raw card number together with where it was found, e.g. "line 3" or "Sheet1!A2".
type Entry struct {
	Location string
	Value    string
}

// Options selects which cells of tabular inputs hold card numbers.
type Options struct {
	// Column is the zero based column read from CSV and Excel inputs.
	Column int
	// SkipHeader drops the first row of CSV and Excel inputs (per sheet).
	SkipHeader bool
	// Sheet restricts Excel inputs to one sheet. Empty reads every sheet.
	Sheet string
}

// Reader extracts entries from an input stream.
type Reader interface {
	Read(ctx context.Context, r io.Reader) ([]Entry, error)
}

// ForFile returns the reader matching the extension of path.
func ForFile(path string, opts Options) (Reader, error) {
	if opts.Column < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumn, opts.Column)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm":
		return &ExcelReader{opts: opts}, nil
	case ".csv":
		return &CSVReader{opts: opts}, nil
	case ".txt", ".text", "":
		return &TextReader{}, nil
	case ".xls":
		return nil, fmt.Errorf("%w: %s (save the workbook as .xlsx)", ErrUnsupportedFormat, ext)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ReadFile opens path and reads its entries with the reader matching its extension.
func ReadFile(ctx context.Context, path string, opts Options) ([]Entry, error) {
	reader, err := ForFile(path, opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := reader.Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// Values returns the raw values of entries in order.
func Values(entries []Entry) []string {
	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}
