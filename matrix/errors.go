// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every kernel returns
// one of these (optionally wrapped with an operation tag via %w) and tests
// match them with errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON CLASSIFICATION
// ----------------------
// The solver surface exposes exactly three outcome classes:
//
//	ErrInvalidInput      - malformed shape (nil, empty, non-square, ragged, non-finite)
//	ErrDimensionMismatch - right-hand side length differs from the matrix dimension
//	ErrSingular          - no pivot above tolerance, or elimination overflowed
//
// Finer-grained sentinels (ErrNonSquare, ErrRagged, ErrNaNInf, ...) are
// reported together with their class using a double %w wrap, so both
// errors.Is(err, ErrInvalidInput) and errors.Is(err, ErrRagged) hold.

var (
	// ErrInvalidInput classifies any malformed coefficient input.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. len(b) != n for Solve or len(x) != Cols() for MatVec.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when elimination finds no pivot above the
	// scaled tolerance, or when the computed solution is not finite.
	ErrSingular = errors.New("matrix: singular system")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRagged signals rows of unequal length in a [][]float64 input.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrEmpty signals a matrix or vector with no entries.
	ErrEmpty = errors.New("matrix: empty input")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
