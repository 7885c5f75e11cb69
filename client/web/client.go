// Package web retrieves product samples from a marketplace search API.
// Results are paginated, the client walks the pages with a configurable
// delay to stay within the rate limits of the remote side.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pricelab/pricelab/client"
)

const (
	defaultMaxPages = 25
	defaultDelay    = 3 * time.Second
	defaultTimeout  = 30 * time.Second
	sortByReviews   = "REVIEWS"
)

// Client is a samples source backed by a marketplace search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxPages   int
	delay      time.Duration
}

// listing is one product entry of a search response.
type listing struct {
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}

// searchResponse is a single page of search results.
type searchResponse struct {
	Products []listing `json:"products"`
	HasMore  bool      `json:"has_more"`
}

// New creates a new marketplace client for the given base url.
func New(baseURL string, timeout, delay time.Duration, maxPages int) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if delay < 0 {
		delay = defaultDelay
	}
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxPages: maxPages,
		delay:    delay,
	}
}

// Samples retrieves the price and rating samples for the given product query.
// Unknown ratings are imputed with the mean of the known ones before the
// samples are handed over.
func (c *Client) Samples(ctx context.Context, query string) (client.Samples, error) {
	samples := make(client.Samples, 0)

	for page := 1; page <= c.maxPages; page++ {
		log.Info().Str("query", query).Int("page", page).Msg("fetching search page")

		response, err := c.search(ctx, query, page)
		if err != nil {
			return nil, fmt.Errorf("could not fetch page %d: %w", page, err)
		}

		for _, l := range response.Products {
			if l.Price <= 0 {
				continue
			}
			samples = append(samples, client.Sample{Price: l.Price, Rating: l.Rating})
		}

		if !response.HasMore {
			break
		}

		if err := c.wait(ctx); err != nil {
			return nil, err
		}
	}

	log.Info().Str("query", query).Int("samples", len(samples)).Msg("search complete")

	return samples.Impute(), nil
}

func (c *Client) search(ctx context.Context, query string, page int) (*searchResponse, error) {
	u := fmt.Sprintf("%s/search?q=%s&srt=%s&pg=%d", c.baseURL, url.QueryEscape(query), sortByReviews, page)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("could not execute request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for '%s'", response.StatusCode, u)
	}

	var sr searchResponse
	if err := json.NewDecoder(response.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	return &sr, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.delay == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.delay):
		return nil
	}
}
