// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//   - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// invalidf reports a shape/value problem under the ErrInvalidInput class while
// keeping the specific sentinel matchable too.
func invalidf(tag string, detail error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, detail)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a
// typed-nil *Dense stored in the interface.
// Returns ErrNilMatrix (class ErrInvalidInput).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return invalidf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return invalidf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square with at least one row.
//
// Assumes m is not nil.
// Errors: ErrEmpty if Rows()==0, ErrNonSquare if Rows()!=Cols(); both under ErrInvalidInput.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return invalidf("ValidateSquare", ErrEmpty)
	}
	if m.Rows() != m.Cols() {
		return invalidf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil is a composite: NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector has length 0 and therefore only passes for n == 0.
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateRows checks a [][]float64 is non-empty and rectangular.
//
// Errors (all under ErrInvalidInput):
//   - ErrEmpty  when there are no rows or the first row has no entries.
//   - ErrRagged when some row length differs from the first row.
//
// Complexity: O(r).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return invalidf("ValidateRows", ErrEmpty)
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return invalidf("ValidateRows", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), width, ErrRagged))
		}
	}

	return nil
}

// ValidateSquareRows is a composite: Rows → Square for raw row slices.
// Complexity: O(r).
func ValidateSquareRows(rows [][]float64) error {
	if err := ValidateRows(rows); err != nil {
		return validatorErrorf("ValidateSquareRows", err)
	}
	if len(rows[0]) != len(rows) {
		return invalidf("ValidateSquareRows", ErrNonSquare)
	}

	return nil
}

// ValidateFinite ensures every entry of m is finite.
// Errors: ErrNaNInf (class ErrInvalidInput) with the first offending coordinates;
// a failing At is reported under ErrInvalidInput as well.
// Complexity: O(r*c); *Dense scans the flat buffer directly.
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if isNonFinite(v) {
				return invalidf("ValidateFinite", fmt.Errorf("at (%d,%d): %w", idx/d.c, idx%d.c, ErrNaNInf))
			}
		}

		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return invalidf("ValidateFinite", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if isNonFinite(v) {
				return invalidf("ValidateFinite", fmt.Errorf("at (%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateFiniteVec ensures every entry of x is finite.
// Errors: ErrNaNInf (class ErrInvalidInput) with the first offending index.
// Complexity: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return invalidf("ValidateFiniteVec", fmt.Errorf("at %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}
