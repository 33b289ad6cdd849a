// Package interp implements two-point linear interpolation:
//
//	y = y1 + (x − x1)·(y2 − y1)/(x2 − x1)
//
// The same formula extrapolates when x lies outside [x1, x2].
package interp

import (
	"errors"
	"math"
)

var (
	// ErrCoincidentX is returned when both points share the same x, leaving the slope undefined.
	ErrCoincidentX = errors.New("interp: x1 equals x2")

	// ErrNonFinite is returned when an input or the result is NaN or ±Inf.
	ErrNonFinite = errors.New("interp: non-finite value")
)

// Point is a sample (X, Y) on the line.
type Point struct {
	X, Y float64
}

// Linear returns the ordinate at x of the line through p1 and p2.
func Linear(p1, p2 Point, x float64) (float64, error) {
	for _, v := range [...]float64{p1.X, p1.Y, p2.X, p2.Y, x} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNonFinite
		}
	}
	dx := p2.X - p1.X
	if dx == 0 {
		return 0, ErrCoincidentX
	}
	y := p1.Y + (x-p1.X)*((p2.Y-p1.Y)/dx)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrNonFinite
	}

	return y, nil
}
