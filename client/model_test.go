package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamples_Axes(t *testing.T) {

	samples := Samples{
		{Price: 10, Rating: 4},
		{Price: 20, Rating: 3.5},
	}

	assert.Equal(t, []float64{10, 20}, samples.Prices())
	assert.Equal(t, []float64{4, 3.5}, samples.Ratings())
}

func TestSamples_Impute(t *testing.T) {

	type test struct {
		samples Samples
		ratings []float64
	}

	tests := map[string]test{
		"no-missing": {
			samples: Samples{{Price: 10, Rating: 4}, {Price: 20, Rating: 2}},
			ratings: []float64{4, 2},
		},
		"one-missing": {
			samples: Samples{{Price: 10, Rating: 4}, {Price: 20, Rating: 0}, {Price: 30, Rating: 2}},
			ratings: []float64{4, 3, 2},
		},
		"all-missing": {
			samples: Samples{{Price: 10, Rating: 0}, {Price: 20, Rating: 0}},
			ratings: []float64{0, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			imputed := tt.samples.Impute()
			assert.Equal(t, tt.ratings, imputed.Ratings())
			// original samples are untouched
			assert.Equal(t, tt.samples.Prices(), imputed.Prices())
		})
	}

}
