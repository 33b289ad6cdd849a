package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/internal/batch"
	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/interp"
	"github.com/katalvlaran/linsolve/linio"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/prompt"
)

// userMessage turns an error into the line printed before exiting.
func userMessage(err error) string {
	var msg string
	switch {
	case errors.Is(err, matrix.ErrSingular):
		msg = "the system is singular (or numerically singular) and has no unique solution"
	case errors.Is(err, linio.ErrLengthMismatch), errors.Is(err, matrix.ErrDimensionMismatch):
		msg = "the right-hand side length must match the matrix size"
	case errors.Is(err, linio.ErrEmpty):
		msg = "the input file is empty"
	case errors.Is(err, linio.ErrNotSquare):
		msg = "the matrix must be square (same number of rows and columns)"
	case errors.Is(err, linio.ErrNonNumeric):
		msg = "the input contains non-numeric values"
	case errors.Is(err, matrix.ErrInvalidInput):
		msg = "invalid input"
	case errors.Is(err, interp.ErrCoincidentX):
		msg = "X1 = X2, the slope is undefined"
	case errors.Is(err, prompt.ErrInputClosed):
		msg = "input ended before all values were entered"
	case errors.Is(err, config.ErrInvalidConfig):
		msg = "invalid configuration"
	case errors.Is(err, batch.ErrNoJobs):
		msg = "no *.matrix.txt / *.rhs.txt pairs found"
	default:
		return err.Error()
	}

	return fmt.Sprintf("%s (%v)", msg, err)
}
