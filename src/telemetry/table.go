// Package telemetry loads MechJeb flight-recorder CSV files into named
// numeric columns and derives the handful of display series the chart grid
// needs but the recorder does not emit directly.
package telemetry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Column names emitted by MechJeb's flight recorder that the chart grid consumes.
const (
	ColDownRange      = "DownRange"
	ColAltitudeASL    = "AltitudeASL"
	ColTimeSinceMark  = "TimeSinceMark"
	ColAcceleration   = "Acceleration"
	ColSpeedOrbital   = "SpeedOrbital"
	ColQ              = "Q"
	ColAoA            = "AoA"
	ColDeltaVExpended = "DeltaVExpended"
)

// ErrColumnMissing is wrapped by Table.Column when a requested column does not
// exist; callers distinguish a wrong/truncated file from other failures with
// errors.Is.
var ErrColumnMissing = errors.New("column missing")

// RequiredColumns returns the canonical column list the renderer resolves
// before drawing anything. Verbose mode adds the two extra series.
func RequiredColumns(verbose bool) []string {
	cols := []string{
		ColDownRange,
		ColAltitudeASL,
		ColTimeSinceMark,
		ColAcceleration,
		ColSpeedOrbital,
		ColQ,
	}
	if verbose {
		cols = append(cols, ColAoA, ColDeltaVExpended)
	}
	return cols
}

// ParseError reports a cell that did not parse as a float. Row and Col are
// 1-based positions in the source file (row 1 is the header).
type ParseError struct {
	Row  int
	Col  int
	Cell string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d column %d: cell %q is not a number: %v", e.Row, e.Col, e.Cell, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Table holds one float64 sequence per column. All sequences have the same
// length (the CSV reader rejects ragged rows). Read-only after ReadTable.
type Table struct {
	headers []string
	columns map[string][]float64
	rows    int
}

// ReadTable materializes an entire telemetry CSV stream: first record is the
// header, every following cell must parse as a float64. Duplicate header names
// are not detected; cells of duplicated headers interleave into one shared
// column. The recorder never duplicates names in practice.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string][]float64, len(headers))
	for _, h := range headers {
		columns[h] = nil
	}
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		for i, cell := range rec {
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, &ParseError{Row: row, Col: i + 1, Cell: cell, Err: perr}
			}
			columns[headers[i]] = append(columns[headers[i]], v)
		}
	}
	return &Table{headers: headers, columns: columns, rows: row - 1}, nil
}

// LoadFile reads a telemetry CSV from disk. The file is closed before
// returning on every path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tbl, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// Column returns the sample sequence for name. The returned slice is shared;
// callers must not mutate it.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnMissing, name)
	}
	return col, nil
}

// Rows returns the number of data rows (header excluded).
func (t *Table) Rows() int { return t.rows }

// Headers returns column names in source order.
func (t *Table) Headers() []string { return t.headers }
