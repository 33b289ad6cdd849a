// Package matrix provides a small dense float64 matrix type and an owned
// solver for square linear systems Ax = b.
//
// The package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and an optional
//     finite-only numeric policy.
//   - Central validators (ValidateSquare, ValidateVecLen, ValidateRows, ...)
//     shared by every kernel.
//   - MatVec and Residual for checking a computed solution.
//   - Solve / SolveRows: Gaussian elimination with partial pivoting and a
//     column-scaled singularity tolerance.
//
// Outcome classes are sentinel errors matched with errors.Is:
//
//	x, err := matrix.SolveRows([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	switch {
//	case errors.Is(err, matrix.ErrSingular):
//		// no unique solution
//	case errors.Is(err, matrix.ErrDimensionMismatch):
//		// len(b) != n
//	case errors.Is(err, matrix.ErrInvalidInput):
//		// empty, ragged, non-square or non-finite input
//	}
//
// Inputs are never mutated; each call owns a private augmented copy, so
// independent systems may be solved from many goroutines at once.
package matrix
