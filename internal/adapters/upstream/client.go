// Package upstream fetches raw scoreboard JSON from the sports-data provider.
//
// Every fetch is a single attempt reflecting the provider's state at call
// time: no retry, no backoff, no caching. Failed calls surface ErrUpstream
// and the caller owns any retry policy.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fightgate/pkg/metrics"
)

// Defaults for the provider endpoint.
const (
	DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/mma/ufc"
	defaultTimeout = 15 * time.Second
	defaultUA      = "fightgate/1.0"
)

// Client reads the provider's scoreboard aggregator endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// New creates a scoreboard client with a bounded request timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  defaultUA,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchScoreboard performs exactly one read of the scoreboard endpoint and
// parses the body as a JSON object. dateFilter, when non-empty, is the
// 8-digit YYYYMMDD value forwarded as the dates query parameter.
func (c *Client) FetchScoreboard(ctx context.Context, dateFilter string) (map[string]any, error) {
	url := c.baseURL + "/scoreboard"
	if dateFilter != "" {
		url += "?dates=" + dateFilter
	}

	start := time.Now()
	raw, err := c.fetch(ctx, url)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.ObserveUpstreamRequest(status, float64(time.Since(start).Milliseconds()))

	return raw, err
}

// Events extracts the raw event list from a scoreboard document.
func Events(scoreboard map[string]any) []map[string]any {
	rawList, _ := scoreboard["events"].([]any)
	events := make([]map[string]any, 0, len(rawList))
	for _, v := range rawList {
		if m, ok := v.(map[string]any); ok {
			events = append(events, m)
		}
	}
	return events
}

func (c *Client) fetch(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return result, nil
}
