package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"donationsvc/internal/domain"
)

// Options parameterise the market-data client.
type Options struct {
	MarketDataURL string
	TrendsURL     string
	Timeout       time.Duration
}

// Client fetches opaque enrichment payloads from remote endpoints. It
// performs no retries and no parsing; responses pass through unchanged. The
// underlying http.Client is shared across calls so connections are reused
// instead of being torn down per request.
type Client struct {
	opts   Options
	client *http.Client
	logger zerolog.Logger
}

// NewClient constructs a market-data client with a pooled HTTP transport.
func NewClient(opts Options, logger zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		opts:   opts,
		client: &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "market_client").Logger(),
	}
}

// FetchMarketData retrieves the charity-insights payload.
func (c *Client) FetchMarketData(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.opts.MarketDataURL)
}

// FetchDonationTrends retrieves the monthly giving-trends report.
func (c *Client) FetchDonationTrends(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, c.opts.TrendsURL)
}

func (c *Client) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.MarketDataError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.MarketDataError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.MarketDataError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.MarketDataError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	// The remote may answer with plain text (maintenance pages included).
	// Encode such bodies as JSON strings so the payload stays opaque but
	// always embeds cleanly into a JSON response.
	if !json.Valid(payload) {
		wrapped, err := json.Marshal(string(payload))
		if err != nil {
			return nil, &domain.MarketDataError{Endpoint: endpoint, Err: err}
		}
		payload = wrapped
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Dur("elapsed", time.Since(start)).
		Int("bytes", len(payload)).
		Msg("market data fetched")

	return json.RawMessage(payload), nil
}
