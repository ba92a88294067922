// Package fred implements the FRED observations API client.
//
// Only the /fred/series/observations endpoint is used; responses are JSON
// and missing observations are encoded by FRED as the literal value ".".
package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL     = "https://api.stlouisfed.org/fred"
	defaultTimeout     = 15 * time.Second
	defaultWindowDays  = 730
	providerName       = "fred"
	observationDateFmt = "2006-01-02"
)

// Client fetches observation series from FRED.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	windowDays int
}

// NewClient creates a FRED client with configuration options.
// An empty api key is allowed at construction; Fetch reports it as an error.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		windowDays: defaultWindowDays,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// observationsResponse mirrors the /fred/series/observations JSON shape.
type observationsResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// Observations fetches a series starting at start.
func (c *Client) Observations(ctx context.Context, seriesID string, start time.Time) (model.Series, error) {
	if c.apiKey == "" {
		metrics.RecordFetchError(providerName, "missing_api_key")
		return model.Series{}, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")
	q.Set("observation_start", start.Format(observationDateFmt))

	endpoint := c.baseURL + "/series/observations?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Series{}, fmt.Errorf("build fred request: %w", err)
	}

	begin := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordFetchLatency(providerName, float64(time.Since(begin).Milliseconds()))
	if err != nil {
		metrics.RecordFetchError(providerName, "transport")
		return model.Series{}, fmt.Errorf("fred request %s: %w", seriesID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordFetchError(providerName, "http_"+strconv.Itoa(resp.StatusCode))
		return model.Series{}, fmt.Errorf("fred %s: %w: %d", seriesID, ErrUpstreamStatus, resp.StatusCode)
	}

	var body observationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RecordFetchError(providerName, "decode")
		return model.Series{}, fmt.Errorf("decode fred %s: %w", seriesID, err)
	}

	s := model.Series{ID: seriesID}
	for _, o := range body.Observations {
		if o.Value == "." {
			// FRED encodes missing observations as ".".
			continue
		}
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		ts, err := time.Parse(observationDateFmt, o.Date)
		if err != nil {
			continue
		}
		s.Observations = append(s.Observations, model.Observation{TS: ts, Value: v})
	}

	metrics.RecordFetch(providerName)
	return s, nil
}

// Fetch implements the provider contract for watchlist symbols, covering
// the configured lookback window.
func (c *Client) Fetch(ctx context.Context, sym model.Symbol) (model.Series, error) {
	start := time.Now().AddDate(0, 0, -c.windowDays)
	return c.Observations(ctx, sym.Ticker, start)
}

// Name returns the provider name used in metrics and logs.
func (c *Client) Name() string {
	return providerName
}
