// SPDX-License-Identifier: MIT
// Package matrix: vector kernels used to check a computed solution.
//
// Purpose:
//   - MatVec computes y = A·x.
//   - Residual / ResidualNorm compute r = A·x − b and max_i |r_i|.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec    = "MatVec"
	opResidual  = "Residual"
	opSolve     = "Solve"
	opSolveRows = "SolveRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, invalidf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual returns r = A·x − b.
//
// Errors:
//   - ErrNilMatrix (nil A), ErrDimensionMismatch (len(x) != Cols or len(b) != Rows).
//
// Complexity: Time O(r*c), Space O(r).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}

// ResidualNorm returns max_i |(A·x − b)_i| (infinity norm of the residual).
// Complexity: Time O(r*c), Space O(r).
func ResidualNorm(a Matrix, x, b []float64) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, err
	}
	worst := ZeroSum
	for _, v := range r {
		if av := math.Abs(v); av > worst || math.IsNaN(av) {
			worst = av
		}
	}

	return worst, nil
}
