// Package local provides a canned samples source for tests and offline runs.
package local

import (
	"context"
	"fmt"

	"github.com/pricelab/pricelab/client"
)

// MockSource serves pre-registered samples, keyed by query.
type MockSource struct {
	samples map[string]client.Samples
	err     error
}

// NewMockSource creates a new mock samples source.
func NewMockSource() *MockSource {
	return &MockSource{
		samples: make(map[string]client.Samples),
	}
}

// Add registers samples for the given query.
func (s *MockSource) Add(query string, samples ...client.Sample) *MockSource {
	s.samples[query] = append(s.samples[query], samples...)
	return s
}

// WithError makes every retrieval fail with the given error.
func (s *MockSource) WithError(err error) *MockSource {
	s.err = err
	return s
}

// Samples returns the registered samples for the query.
func (s *MockSource) Samples(_ context.Context, query string) (client.Samples, error) {
	if s.err != nil {
		return nil, s.err
	}
	samples, ok := s.samples[query]
	if !ok {
		return nil, fmt.Errorf("no samples present for '%s'", query)
	}
	return samples.Impute(), nil
}
