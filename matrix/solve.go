// SPDX-License-Identifier: MIT
// Package matrix - dense linear system solver.
//
// Purpose:
//   - Solve a square system A·x = b by Gaussian elimination with partial pivoting.
//   - Report exactly one of: a full solution, ErrInvalidInput, ErrDimensionMismatch, ErrSingular.
//
// Numeric policy:
//   - float64 throughout.
//   - Column k is rejected as singular when the chosen pivot fails
//     |pivot| > factor · MachineEpsilon · n · max(colMax_k, |pivot|),
//     colMax_k being the largest |A[i][k]| of the caller's matrix. The bound
//     follows the scale of the input column, so uniformly rescaled systems
//     are accepted or rejected alike; an all-zero column is always rejected.
//   - The pivot test runs before every division, so no division by a
//     near-zero pivot can happen. A non-finite solution (overflow) is
//     reported as ErrSingular.
//
// Ownership:
//   - Inputs are read once into a private augmented buffer [A | b] and never mutated.
//   - Row swaps exchange row headers only (O(1)); columns are never permuted,
//     so x is returned in the caller's column order.

package matrix

import (
	"fmt"
	"math"
)

// augmented is the private working copy of [A | b] for one solve call.
type augmented struct {
	n     int         // system dimension
	buf   []float64   // n*(n+1) row-major storage, stride n+1
	rows  [][]float64 // row headers over buf; permuted by pivoting
	scale []float64   // colMax_k = max_i |A[i][k]| of the input matrix
}

// newAugmented allocates an n×(n+1) zero working system.
// Complexity: Time O(n^2), Space O(n^2).
func newAugmented(n int) *augmented {
	stride := n + 1
	w := &augmented{
		n:     n,
		buf:   make([]float64, n*stride),
		rows:  make([][]float64, n),
		scale: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		w.rows[i] = w.buf[i*stride : (i+1)*stride : (i+1)*stride]
	}

	return w
}

// put stores A[i][j] and tracks the column scale.
func (w *augmented) put(i, j int, v float64) {
	w.rows[i][j] = v
	if av := math.Abs(v); av > w.scale[j] || math.IsNaN(av) {
		w.scale[j] = av
	}
}

// putRHS stores b[i] in the augmented column.
func (w *augmented) putRHS(b []float64) {
	for i, v := range b {
		w.rows[i][w.n] = v
	}
}

// Solve returns x such that a·x = b.
// Implementation:
//   - Stage 1: validate a (non-nil, square, n ≥ 1), finiteness (policy), len(b) == n.
//   - Stage 2: copy [a | b] into a private augmented buffer (fast path for *Dense).
//   - Stage 3: forward elimination with partial pivoting and the scaled pivot test.
//   - Stage 4: back-substitution and final finiteness check.
//
// Inputs:
//   - a: square coefficient matrix; never mutated.
//   - b: right-hand side of length a.Rows(); never mutated.
//   - opts: WithPivotTolerance, WithNoValidateNaNInf.
//
// Returns:
//   - []float64: a fresh solution vector in column order (only when err == nil).
//
// Errors:
//   - ErrInvalidInput (+ErrNilMatrix / ErrEmpty / ErrNonSquare / ErrNaNInf).
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrSingular when no pivot clears the tolerance or the solution overflows.
//
// Determinism:
//   - First maximal |entry| wins the pivot search; fixed k→r→j loop order.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
//
// AI-Hints:
//   - Check the answer with ResidualNorm(a, x, b) when inputs are ill-conditioned.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if o.validateNaNInf {
		if err := ValidateFiniteVec(b); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}

	w := newAugmented(n)
	if d, ok := a.(*Dense); ok {
		for idx, v := range d.data {
			w.put(idx/n, idx%n, v)
		}
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, invalidf(opSolve, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				w.put(i, j, v)
			}
		}
	}
	w.putRHS(b)

	return w.solve(o.pivotTolerance, opSolve)
}

// SolveRows is Solve for raw row slices, the shape produced by file readers
// and prompts. Ragged or non-square rows are rejected with ErrInvalidInput.
//
// Errors:
//   - ErrInvalidInput (+ErrEmpty / ErrRagged / ErrNonSquare / ErrNaNInf).
//   - ErrDimensionMismatch, ErrSingular as in Solve.
//
// Complexity: Time O(n^3), Space O(n^2).
func SolveRows(a [][]float64, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	if err := ValidateSquareRows(a); err != nil {
		return nil, matrixErrorf(opSolveRows, err)
	}
	n := len(a)
	if o.validateNaNInf {
		for i := 0; i < n; i++ {
			if err := ValidateFiniteVec(a[i]); err != nil {
				return nil, matrixErrorf(opSolveRows, fmt.Errorf("row %d: %w", i, err))
			}
		}
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveRows, err)
	}
	if o.validateNaNInf {
		if err := ValidateFiniteVec(b); err != nil {
			return nil, matrixErrorf(opSolveRows, err)
		}
	}

	w := newAugmented(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w.put(i, j, a[i][j])
		}
	}
	w.putRHS(b)

	return w.solve(o.pivotTolerance, opSolveRows)
}

// solve runs elimination and back-substitution on the owned working copy.
func (w *augmented) solve(factor float64, tag string) ([]float64, error) {
	n := w.n
	bound := factor * MachineEpsilon * float64(n) // per-column multiplier of the scale

	var (
		k, r, j, p  int
		best, v     float64
		tol, f, piv float64
		pivotRow    []float64
		row         []float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest |W[r][k]| over r ≥ k, first maximum wins.
		p, best = k, math.Abs(w.rows[k][k])
		for r = k + 1; r < n; r++ {
			if v = math.Abs(w.rows[r][k]); v > best {
				p, best = r, v
			}
		}

		// Scaled singularity test; NaN fails the comparison and is rejected too.
		tol = bound * math.Max(w.scale[k], best)
		if !(best > tol) {
			return nil, matrixErrorf(tag, fmt.Errorf("column %d: pivot %g within tolerance %g: %w", k, best, tol, ErrSingular))
		}
		if p != k {
			w.rows[k], w.rows[p] = w.rows[p], w.rows[k]
		}

		pivotRow = w.rows[k]
		piv = pivotRow[k]
		for r = k + 1; r < n; r++ {
			row = w.rows[r]
			f = row[k] / piv
			row[k] = 0 // eliminated; never read again
			if f == 0 {
				continue
			}
			for j = k + 1; j <= n; j++ {
				row[j] -= f * pivotRow[j]
			}
		}
	}

	// Back-substitution on the upper-triangular system.
	x := make([]float64, n)
	var sum float64
	for r = n - 1; r >= 0; r-- {
		row = w.rows[r]
		sum = row[n]
		for j = r + 1; j < n; j++ {
			sum -= row[j] * x[j]
		}
		x[r] = sum / row[r]
	}
	for j = 0; j < n; j++ {
		if isNonFinite(x[j]) {
			return nil, matrixErrorf(tag, fmt.Errorf("x[%d] is not finite: %w", j, ErrSingular))
		}
	}

	return x, nil
}
