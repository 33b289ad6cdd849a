// Package linio: sentinel error set.
//
// Every read error is reported twice: as the specific linio sentinel and as
// the solver class it corresponds to (matrix.ErrInvalidInput or
// matrix.ErrDimensionMismatch), so callers can classify file problems and
// solver problems with the same errors.Is switch.

package linio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

var (
	// ErrEmpty is returned when a matrix or vector file holds no values.
	ErrEmpty = errors.New("linio: no values")

	// ErrNonNumeric is returned when a token does not parse as a float64.
	ErrNonNumeric = errors.New("linio: non-numeric value")

	// ErrNotSquare is returned when the row count differs from some row length.
	ErrNotSquare = errors.New("linio: matrix must be square")

	// ErrLengthMismatch is returned when a vector does not have the expected length.
	ErrLengthMismatch = errors.New("linio: vector length does not match the matrix size")

	// ErrUnknownFormat is returned for report formats other than text and yaml.
	ErrUnknownFormat = errors.New("linio: unknown report format")
)

// invalidInput tags err as matrix.ErrInvalidInput while keeping it matchable.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", err, matrix.ErrInvalidInput)
}

// lineErrorf prefixes a classified error with its 1-based line number.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
