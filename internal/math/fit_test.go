package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {

	type test struct {
		x      []float64
		y      []float64
		degree int
		cc     []float64
	}

	tests := map[string]test{
		"line": {
			x:      []float64{0, 1, 2, 3, 4},
			y:      []float64{1, 3, 5, 7, 9},
			degree: 1,
			cc:     []float64{1, 2},
		},
		"flat": {
			x:      []float64{1, 2, 3, 4},
			y:      []float64{5, 5, 5, 5},
			degree: 1,
			cc:     []float64{5, 0},
		},
		"quadratic": {
			x:      []float64{-2, -1, 0, 1, 2},
			y:      []float64{4, 1, 0, 1, 4},
			degree: 2,
			cc:     []float64{0, 0, 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cc, err := Fit(tt.x, tt.y, tt.degree)
			require.NoError(t, err)
			require.Len(t, cc, tt.degree+1)
			for i, c := range tt.cc {
				assert.InDelta(t, c, cc[i], 1e-9)
			}
		})
	}

}

func TestFitOrigin(t *testing.T) {

	type test struct {
		x     []float64
		y     []float64
		slope float64
	}

	tests := map[string]test{
		"through-origin": {
			x:     []float64{1, 2, 3, 4},
			y:     []float64{2, 4, 6, 8},
			slope: 2,
		},
		"negative": {
			x:     []float64{1, 2, 3},
			y:     []float64{-3, -6, -9},
			slope: -3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			slope := FitOrigin(tt.x, tt.y)
			assert.InDelta(t, tt.slope, slope, 1e-9)
		})
	}

}

func TestRSquared(t *testing.T) {

	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}

	t.Run("perfect", func(t *testing.T) {
		r2 := RSquared(x, y, func(xi float64) float64 {
			return 1 + 2*xi
		})
		assert.InDelta(t, 1, r2, 1e-9)
	})

	t.Run("mean-prediction", func(t *testing.T) {
		r2 := RSquared(x, y, func(xi float64) float64 {
			return 5
		})
		assert.InDelta(t, 0, r2, 1e-9)
	})

	t.Run("constant-target-perfect", func(t *testing.T) {
		r2 := RSquared(x, []float64{2, 2, 2, 2, 2}, func(xi float64) float64 {
			return 2
		})
		assert.Equal(t, 1.0, r2)
	})

	t.Run("constant-target-residual", func(t *testing.T) {
		r2 := RSquared(x, []float64{2, 2, 2, 2, 2}, func(xi float64) float64 {
			return 3
		})
		assert.Equal(t, 0.0, r2)
	})

}
