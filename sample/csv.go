package sample

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoPairs is returned when a CSV source holds no complete (x, y) row.
var ErrNoPairs = errors.New("no valid pairs found in CSV")

// ErrColumnNotFound is returned when a named column is missing from the header.
var ErrColumnNotFound = errors.New("column not found")

// ErrNoHeader is returned when columns are selected by name or an ID filter
// is set but the data has no header row to resolve names against.
var ErrNoHeader = errors.New("column names require a header row")

// CSVOptions holds options for loading paired columns.
type CSVOptions struct {
	XColumn   string // Column name for x (default: first column)
	YColumn   string // Column name for y (default: second column)
	IDColumn  string // Column name for row ID (optional, for filtering)
	IDFilter  string // Value to filter by ID column
	HasHeader bool   // Whether CSV has header row (default: true)
	Delimiter rune   // Field delimiter (default: ',')
	SkipRows  int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// Pairs holds two equal-length columns read from one source.
type Pairs struct {
	X     []float64
	Y     []float64
	XName string
	YName string
}

// Len returns the number of pairs.
func (p *Pairs) Len() int {
	return len(p.X)
}

// LoadPairs reads two numeric columns from CSV data. Rows where either value
// is empty, NA, NaN, null or not a number are skipped so the columns stay
// aligned.
func LoadPairs(r io.Reader, opts *CSVOptions) (*Pairs, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	if !opts.HasHeader && (opts.XColumn != "" || opts.YColumn != "" || opts.IDColumn != "" || opts.IDFilter != "") {
		return nil, ErrNoHeader
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("skip row %d: %w", i, err)
		}
	}

	pairs := &Pairs{XName: "x", YName: "y"}
	xIdx, yIdx, idIdx := 0, 1, -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}

		xIdx, yIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if opts.XColumn != "" && h == opts.XColumn && xIdx < 0 {
				xIdx = i
			}
			if opts.YColumn != "" && h == opts.YColumn && yIdx < 0 {
				yIdx = i
			}
			if opts.IDColumn != "" && h == opts.IDColumn && idIdx < 0 {
				idIdx = i
			}
		}

		if opts.XColumn == "" {
			xIdx = firstOther(len(header), yIdx, idIdx)
		}
		if opts.YColumn == "" {
			yIdx = firstOther(len(header), xIdx, idIdx)
		}
		if xIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.XColumn)
		}
		if yIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.YColumn)
		}
		if opts.IDFilter != "" && idIdx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.IDColumn)
		}

		pairs.XName = strings.TrimSpace(header[xIdx])
		pairs.YName = strings.TrimSpace(header[yIdx])
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			id := strings.TrimSpace(strings.Trim(record[idIdx], "\""))
			if id != opts.IDFilter {
				continue
			}
		}

		if xIdx >= len(record) || yIdx >= len(record) {
			continue
		}
		x, ok := parseCell(record[xIdx])
		if !ok {
			continue
		}
		y, ok := parseCell(record[yIdx])
		if !ok {
			continue
		}

		pairs.X = append(pairs.X, x)
		pairs.Y = append(pairs.Y, y)
	}

	if pairs.Len() == 0 {
		return nil, ErrNoPairs
	}

	return pairs, nil
}

// firstOther returns the first column index in [0, n) that is not one of skip.
func firstOther(n int, skip ...int) int {
	for i := 0; i < n; i++ {
		taken := false
		for _, s := range skip {
			if s == i {
				taken = true
				break
			}
		}
		if !taken {
			return i
		}
	}
	return -1
}

func parseCell(cell string) (float64, bool) {
	s := strings.TrimSpace(strings.Trim(cell, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
