// Package linsolve solves dense square linear systems A·x = b.
//
// The module is organised as:
//
//	matrix/        Dense matrix, validators, MatVec/Residual and the owned
//	               Gaussian-elimination solver (Solve, SolveRows)
//	linio/         plain-text matrix/vector files and solution reports (text, YAML)
//	prompt/        console dialogue collecting a system entry by entry
//	interp/        two-point linear interpolation
//	internal/      config (viper), logger (zap), batch (parallel solving)
//	cmd/linsolve/  the command-line tool (cobra)
//
// Quick start:
//
//	x, err := matrix.SolveRows([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	if errors.Is(err, matrix.ErrSingular) {
//		// no unique solution
//	}
//
// Every failure is one of three classes: matrix.ErrInvalidInput,
// matrix.ErrDimensionMismatch or matrix.ErrSingular.
package linsolve
