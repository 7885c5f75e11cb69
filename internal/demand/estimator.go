package demand

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	labmath "github.com/pricelab/pricelab/internal/math"
)

var (
	// ErrEmptyInput marks an estimation with no samples on one of the axes.
	ErrEmptyInput = errors.New("empty prices or ratings")
	// ErrLengthMismatch marks an estimation with unbalanced sample axes.
	ErrLengthMismatch = errors.New("prices and ratings have different lengths")
	// ErrNoValidData marks an estimation where cleaning left no usable rows.
	ErrNoValidData = errors.New("no valid data for demand estimation")
	// ErrRegression marks a numeric failure of the fitting step.
	ErrRegression = errors.New("regression failure")
)

const (
	// ratingScale conditions the raw ratings before normalization.
	ratingScale = 100.0
	// interceptThreshold is the cutoff below which the intercept is dropped from the fit.
	interceptThreshold = 0.05
)

// Estimate derives the demand curve parameters from the given price and rating samples.
// The ratings are normalized to a demand proportion in [0,1]
// and the inverse proportion is regressed against the price,
// modelling demand_proportion = 1 - (b/a) * price.
// maxDemand is the theoretical maximum demand at price zero,
// any non-positive value defaults it based on the sample count.
func Estimate(prices, ratings []float64, maxDemand float64) (Parameters, error) {
	if len(prices) == 0 || len(ratings) == 0 {
		return Parameters{}, ErrEmptyInput
	}
	if len(prices) != len(ratings) {
		return Parameters{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(prices), len(ratings))
	}

	// drop rows with undefined values on either axis
	x := make([]float64, 0, len(prices))
	r := make([]float64, 0, len(ratings))
	for i := range prices {
		if !isFinite(prices[i]) || !isFinite(ratings[i]) {
			continue
		}
		x = append(x, prices[i])
		r = append(r, ratings[i]*ratingScale)
	}
	if len(x) == 0 {
		return Parameters{}, ErrNoValidData
	}
	// the linear fit is underdetermined below two samples
	if len(x) < 2 {
		return Parameters{}, fmt.Errorf("%w: not enough samples to fit", ErrRegression)
	}

	maxRating := 0.0
	for _, v := range r {
		if v > maxRating {
			maxRating = v
		}
	}
	if maxRating <= 0 {
		return Parameters{}, fmt.Errorf("%w: max rating is not positive", ErrRegression)
	}

	// inverse of the demand proportion
	y := make([]float64, len(r))
	for i, v := range r {
		y[i] = 1 - v/maxRating
	}

	cc, err := labmath.Fit(x, y, 1)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %s", ErrRegression, err.Error())
	}

	intercept := cc[0]
	slope := cc[1]
	if math.Abs(intercept) < interceptThreshold {
		log.Info().Float64("intercept", intercept).Msg("intercept close to zero, using model without intercept")
		intercept = 0
		slope = labmath.FitOrigin(x, y)
	} else {
		log.Info().Float64("intercept", intercept).Msg("using model with intercept")
	}
	if !isFinite(slope) || !isFinite(intercept) {
		return Parameters{}, fmt.Errorf("%w: non-finite coefficients", ErrRegression)
	}

	if maxDemand <= 0 {
		maxDemand = math.Max(100, 0.1*float64(len(prices)))
		log.Info().Float64("max-demand", maxDemand).Msg("using default max theoretical demand")
	}

	if slope < 0 {
		log.Warn().Float64("slope", slope).Msg("negative price sensitivity detected, using absolute value")
	}
	b := math.Abs(slope) * maxDemand

	r2 := labmath.RSquared(x, y, func(xi float64) float64 {
		return intercept + slope*xi
	})

	params := Parameters{
		A:         maxDemand,
		B:         b,
		R2:        r2,
		Intercept: intercept,
	}

	log.Info().
		Float64("a_d", params.A).
		Float64("b_d", params.B).
		Float64("r2", params.R2).
		Msg("estimated demand function parameters")

	return params, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
