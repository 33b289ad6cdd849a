package linio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// maxLineBytes bounds a single input line (a row of a large matrix).
const maxLineBytes = 4 << 20

// newScanner returns a line scanner with a buffer large enough for wide rows.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}

// parseFields converts whitespace-separated tokens into float64 values.
func parseFields(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, invalidInput(fmt.Errorf("%q: %w", tok, ErrNonNumeric))
		}
		out[i] = v
	}

	return out, nil
}

// ReadMatrix reads a square coefficient matrix, one row per non-blank line.
//
// Errors:
//   - ErrNonNumeric with the offending line and token.
//   - ErrEmpty when the input has no rows.
//   - ErrNotSquare when any row length differs from the number of rows.
//
// All three also match matrix.ErrInvalidInput. Scanner failures are returned as-is.
func ReadMatrix(r io.Reader) ([][]float64, error) {
	sc := newScanner(r)
	var rows [][]float64
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := parseFields(fields)
		if err != nil {
			return nil, lineErrorf(line, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("linio: read matrix: %w", err)
	}
	if len(rows) == 0 {
		return nil, invalidInput(ErrEmpty)
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, invalidInput(fmt.Errorf("row %d has %d entries for %d rows: %w", i+1, len(row), n, ErrNotSquare))
		}
	}

	return rows, nil
}

// ReadVector reads one value per non-blank line.
// expected < 0 disables the length check.
//
// Errors:
//   - ErrNonNumeric (line has no parseable single value) and ErrEmpty, both matrix.ErrInvalidInput.
//   - ErrLengthMismatch when the count differs from expected (matrix.ErrDimensionMismatch).
func ReadVector(r io.Reader, expected int) ([]float64, error) {
	sc := newScanner(r)
	var values []float64
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, lineErrorf(line, invalidInput(fmt.Errorf("%q: %w", text, ErrNonNumeric)))
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("linio: read vector: %w", err)
	}
	if len(values) == 0 && expected != 0 {
		return nil, invalidInput(ErrEmpty)
	}
	if expected >= 0 && len(values) != expected {
		return nil, fmt.Errorf("got %d values, want %d: %w: %w", len(values), expected, ErrLengthMismatch, matrix.ErrDimensionMismatch)
	}

	return values, nil
}
