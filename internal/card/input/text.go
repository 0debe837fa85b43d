package input

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// TextReader reads one card number per line. Blank lines and lines starting with '#' are skipped.
type TextReader struct{}

// Read implements Reader.
func (t *TextReader) Read(ctx context.Context, r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value := strings.TrimSpace(scanner.Text())
		if value == "" || strings.HasPrefix(value, "#") {
			continue
		}
		entries = append(entries, Entry{Location: fmt.Sprintf("line %d", line), Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// CSVReader reads card numbers from one column of a CSV file.
// Rows too short to have the column are skipped.
type CSVReader struct {
	opts Options
}

// Read implements Reader.
func (c *CSVReader) Read(ctx context.Context, r io.Reader) ([]Entry, error) {
	if c.opts.Column < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumn, c.opts.Column)
	}

	var entries []Entry

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if row == 1 && c.opts.SkipHeader {
			continue
		}
		if c.opts.Column >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[c.opts.Column])
		if value == "" {
			continue
		}
		entries = append(entries, Entry{Location: fmt.Sprintf("row %d", row), Value: value})
	}

	return entries, nil
}
