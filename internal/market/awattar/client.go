// Package awattar implements the market.Fetcher interface against the
// aWATTar day-ahead market data API.
package awattar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"strompreis/internal/metrics"
	"strompreis/internal/models"
)

const (
	// ProviderName is the unique identifier for the aWATTar provider
	ProviderName = "awattar"
	// BaseURL is the aWATTar Austria market data endpoint
	BaseURL = "https://api.awattar.at/v1/marketdata"
)

// MarketEntry represents a single hour in the aWATTar response
type MarketEntry struct {
	StartTimestamp int64   `json:"start_timestamp"`
	EndTimestamp   int64   `json:"end_timestamp"`
	Marketprice    float64 `json:"marketprice"`
	Unit           string  `json:"unit"`
}

// Response represents the response from the aWATTar API
type Response struct {
	Object string        `json:"object"`
	Data   []MarketEntry `json:"data"`
	URL    string        `json:"url"`
}

// Client fetches day-ahead prices from the aWATTar API
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new aWATTar client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchRange fetches all published market hours in [start, end). The range
// is passed upstream as epoch milliseconds. Hours the exchange has not
// published yet are simply absent from the result.
func (c *Client) FetchRange(ctx context.Context, start, end time.Time) ([]models.PricePoint, error) {
	timer := prometheus.NewTimer(metrics.FetchDuration)
	defer timer.ObserveDuration()

	params := url.Values{}
	params.Add("start", strconv.FormatInt(start.UnixMilli(), 10))
	params.Add("end", strconv.FormatInt(end.UnixMilli(), 10))
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.FetchErrors.Inc()
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.FetchErrors.Inc()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		metrics.FetchErrors.Inc()
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	points := make([]models.PricePoint, 0, len(response.Data))
	for _, entry := range response.Data {
		points = append(points, models.PricePoint{
			Timestamp: time.UnixMilli(entry.StartTimestamp).UTC(),
			Price:     entry.Marketprice,
		})
	}
	return points, nil
}
