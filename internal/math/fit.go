package math

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit fits the given series of x and y into a polynomial function of the given degree
// output is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	err := qr.SolveTo(c, false, b)

	v := c.ColView(0)
	cc := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		cc[i] = v.AtVec(i)
	}
	return cc, err
}

// FitOrigin fits a straight line through the origin, y = c*x,
// and returns the slope c.
func FitOrigin(x, y []float64) float64 {
	_, beta := stat.LinearRegression(x, y, nil, true)
	return beta
}

// RSquared computes the coefficient of determination of the given prediction
// against the observed values.
// A constant target with a perfect prediction scores 1, with any residual 0.
func RSquared(x, y []float64, predict func(float64) float64) float64 {
	mean := stat.Mean(y, nil)
	var ssRes, ssTot float64
	for i, xi := range x {
		r := y[i] - predict(xi)
		d := y[i] - mean
		ssRes += r * r
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
