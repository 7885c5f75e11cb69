package client

import (
	"context"
)

// Source provides price and rating samples for a product query.
type Source interface {
	Samples(ctx context.Context, query string) (Samples, error)
}

// Factory defines the factory interface for a samples source.
type Factory func() (Source, error)
