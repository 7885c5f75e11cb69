package optimize

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pricelab/pricelab/internal/buffer"
	"github.com/pricelab/pricelab/internal/demand"
	labmath "github.com/pricelab/pricelab/internal/math"
)

const (
	// fallback bracket when no prices were observed
	fallbackLow  = 0.0
	fallbackHigh = 1000.0
	// fallback unit cost when no prices were observed
	fallbackCost = 10.0
	// costFactor derives the default unit cost from the cheapest observation.
	costFactor = 0.7
)

// PriceBracket derives the search interval from the observed prices.
func PriceBracket(prices []float64) Bracket {
	if len(prices) == 0 {
		return Bracket{Low: fallbackLow, High: fallbackHigh}
	}
	stats := buffer.NewStats()
	for _, p := range prices {
		stats.Push(p)
	}
	return Bracket{Low: stats.Min(), High: stats.Max()}
}

// Run estimates the demand curve from the given samples and locates the
// profit maximizing price within the observed price bracket.
// A non-positive cost defaults to a fraction of the cheapest observation,
// a non-positive maxDemand is defaulted by the estimator.
func Run(prices, ratings []float64, cost, maxDemand float64) (*Result, error) {
	bracket := PriceBracket(prices)
	log.Info().
		Float64("low", bracket.Low).
		Float64("high", bracket.High).
		Msg("price range")

	params, err := demand.Estimate(prices, ratings, maxDemand)
	if err != nil {
		return nil, fmt.Errorf("could not estimate demand parameters: %w", err)
	}

	if cost <= 0 {
		cost = fallbackCost
		if len(prices) > 0 {
			stats := buffer.NewStats()
			for _, p := range prices {
				stats.Push(p)
			}
			cost = costFactor * stats.Min()
		}
		log.Info().Float64("cost", cost).Msg("using default cost")
	}

	profit := params.Profit(cost)

	price, maxProfit, iterations, err := labmath.Maximize(profit, bracket.Low, bracket.High, labmath.DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("could not maximize profit function: %w", err)
	}

	result := &Result{
		OptimumPrice:    price,
		MaximumProfit:   maxProfit,
		EstimatedDemand: params.Quantity(price),
		Iterations:      iterations,
		Parameters:      params,
		PriceRange:      bracket,
		Cost:            cost,
	}

	log.Info().
		Int("iterations", result.Iterations).
		Float64("optimum-price", result.OptimumPrice).
		Float64("maximum-profit", result.MaximumProfit).
		Float64("estimated-demand", result.EstimatedDemand).
		Msg("optimization complete")

	return result, nil
}
