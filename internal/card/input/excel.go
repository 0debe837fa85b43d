package input

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads card numbers from one column of .xlsx workbooks.
// Card numbers must be stored as text cells; numeric cells lose digits past the 15th.
type ExcelReader struct {
	opts Options
}

// Read implements Reader.
func (e *ExcelReader) Read(ctx context.Context, r io.Reader) ([]Entry, error) {
	if e.opts.Column < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumn, e.opts.Column)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if e.opts.Sheet != "" {
		if idx, _ := f.GetSheetIndex(e.opts.Sheet); idx < 0 {
			return nil, fmt.Errorf("%w: sheet %q not found", ErrUnsupportedFormat, e.opts.Sheet)
		}
		sheets = []string{e.opts.Sheet}
	}

	var entries []Entry
	for _, sheet := range sheets {
		sheetEntries, err := e.readSheet(ctx, f, sheet)
		if err != nil {
			return nil, err
		}
		entries = append(entries, sheetEntries...)
	}

	return entries, nil
}

func (e *ExcelReader) readSheet(ctx context.Context, f *excelize.File, sheet string) ([]Entry, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	rowIdx := 0
	for rows.Next() {
		rowIdx++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		columns, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d of sheet %q: %w", rowIdx, sheet, err)
		}
		if rowIdx == 1 && e.opts.SkipHeader {
			continue
		}
		if e.opts.Column >= len(columns) {
			continue
		}

		value := strings.TrimSpace(columns[e.opts.Column])
		if value == "" {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(e.opts.Column+1, rowIdx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Location: sheet + "!" + cell, Value: value})
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %q: %w", sheet, err)
	}

	return entries, nil
}
