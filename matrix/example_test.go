// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// ExampleSolveRows solves the 2×2 system
//
//	2x + 1y = 3
//	1x + 3y = 5
func ExampleSolveRows() {
	x, err := matrix.SolveRows([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.4f y=%.4f\n", x[0], x[1])
	// Output:
	// x=0.8000 y=1.4000
}

// ExampleSolveRows_pivoting shows a zero leading coefficient that requires a row swap.
func ExampleSolveRows_pivoting() {
	x, _ := matrix.SolveRows([][]float64{{0, 1}, {1, 0}}, []float64{2, 3})
	fmt.Println(x)
	// Output:
	// [3 2]
}

// ExampleSolveRows_singular classifies a rank-deficient system.
func ExampleSolveRows_singular() {
	_, err := matrix.SolveRows([][]float64{{1, 2}, {2, 4}}, []float64{1, 2})
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// true
}

// ExampleSolve uses a *Dense and checks the residual of the answer.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	b := []float64{8, -11, -3}

	x, err := matrix.Solve(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, _ := matrix.ResidualNorm(a, x, b)
	fmt.Printf("x=[%.3f %.3f %.3f] small residual=%v\n", x[0], x[1], x[2], res < 1e-12)
	// Output:
	// x=[2.000 3.000 -1.000] small residual=true
}
