// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil *Dense", (*matrix.Dense)(nil), matrix.ErrNilMatrix},
		{"1x1", dense(1, 1), nil},
		{"3x3", dense(3, 3), nil},
		{"2x3", dense(2, 3), matrix.ErrNonSquare},
		{"hidden 2x3", hide{dense(2, 3)}, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}
}

func TestValidateRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"nil", nil, matrix.ErrEmpty},
		{"empty row", [][]float64{{}}, matrix.ErrEmpty},
		{"rect", [][]float64{{1, 2, 3}, {4, 5, 6}}, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrRagged},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRows(tc.rows)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}

	require.ErrorIs(t, matrix.ValidateSquareRows([][]float64{{1, 2}}), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquareRows([][]float64{{1, 2}, {3, 4}}))
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateFinite(hide{m}))

	raw := MustDense(t, 2, 2)
	bad := &nanAt{Matrix: raw, i: 1, j: 0}
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)

	require.NoError(t, matrix.ValidateFiniteVec([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{0, math.NaN()}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{math.Inf(-1)}), matrix.ErrInvalidInput)
}

// nanAt reports NaN at a single coordinate, bypassing the Dense Set policy.
type nanAt struct {
	matrix.Matrix
	i, j int
}

func (m *nanAt) At(i, j int) (float64, error) {
	if i == m.i && j == m.j {
		return math.NaN(), nil
	}

	return m.Matrix.At(i, j)
}
