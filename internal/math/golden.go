package math

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the bracket width below which the search stops.
	DefaultTolerance = 1e-3
	// maxIterations is a hard safety cap for brackets that never converge.
	maxIterations = 100
)

// phi is the golden ratio conjugate used to place the interior points.
var phi = (math.Sqrt(5) - 1) / 2

// Maximize locates the maximum of a unimodal function within [lo,hi]
// by shrinking the bracket with the golden ratio.
// Each iteration makes exactly one new function evaluation,
// the other interior point is carried over from the previous bracket.
// Ties between the interior points shrink the bracket from the left.
// It returns the midpoint of the final bracket, the function value there
// and the number of iterations.
// Any non-finite function value aborts the search with an error.
func Maximize(f func(float64) float64, lo, hi, tol float64) (float64, float64, int, error) {
	if lo > hi {
		return 0, 0, 0, fmt.Errorf("invalid bracket [%v,%v]", lo, hi)
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	eval := func(x float64) (float64, error) {
		v := f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("non-finite value %v at %v", v, x)
		}
		return v, nil
	}

	x1 := hi - phi*(hi-lo)
	x2 := lo + phi*(hi-lo)
	f1, err := eval(x1)
	if err != nil {
		return 0, 0, 0, err
	}
	f2, err := eval(x2)
	if err != nil {
		return 0, 0, 0, err
	}

	iteration := 0
	for math.Abs(hi-lo) > tol && iteration < maxIterations {
		iteration++
		if f1 > f2 {
			hi = x2
			x2 = x1
			f2 = f1
			x1 = hi - phi*(hi-lo)
			if f1, err = eval(x1); err != nil {
				return 0, 0, 0, err
			}
		} else {
			lo = x1
			x1 = x2
			f1 = f2
			x2 = lo + phi*(hi-lo)
			if f2, err = eval(x2); err != nil {
				return 0, 0, 0, err
			}
		}
	}

	x := (lo + hi) / 2
	v, err := eval(x)
	if err != nil {
		return 0, 0, 0, err
	}
	return x, v, iteration, nil
}
