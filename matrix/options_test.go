// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the functional options.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	assert.Equal(t, math.Pow(2, -52), matrix.MachineEpsilon)
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(
		matrix.WithPivotTolerance(10),
		matrix.WithNoValidateNaNInf(),
		matrix.WithPivotTolerance(2),
		nil,
	)
	assert.Equal(t, 2.0, o.PivotTolerance())
	assert.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	assert.True(t, o.ValidateNaNInf())
}

func TestWithPivotTolerance_PanicsOnNonsense(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { matrix.WithPivotTolerance(bad) }, "factor %g", bad)
	}
}
