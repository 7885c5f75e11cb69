package client

import (
	"github.com/pricelab/pricelab/internal/buffer"
)

// Sample pairs an observed product price with the rating backing it.
// A rating of zero means the rating is unknown.
type Sample struct {
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}

// Samples is an unordered collection of market observations.
type Samples []Sample

// Prices extracts the price axis.
func (s Samples) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, sample := range s {
		prices[i] = sample.Price
	}
	return prices
}

// Ratings extracts the rating axis.
func (s Samples) Ratings() []float64 {
	ratings := make([]float64, len(s))
	for i, sample := range s {
		ratings[i] = sample.Rating
	}
	return ratings
}

// Impute replaces unknown ratings with the mean of the known ones.
// With no known rating at all the samples are returned unchanged.
func (s Samples) Impute() Samples {
	stats := buffer.NewStats()
	for _, sample := range s {
		if sample.Rating > 0 {
			stats.Push(sample.Rating)
		}
	}
	if stats.Count() == 0 {
		return s
	}
	mean := stats.Avg()
	samples := make(Samples, len(s))
	for i, sample := range s {
		if sample.Rating == 0 {
			sample.Rating = mean
		}
		samples[i] = sample
	}
	return samples
}
