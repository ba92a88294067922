// Package yahoo implements the Yahoo Finance chart API client used for
// index, FX and commodity quotes.
package yahoo

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
	defaultBaseURL  = "https://query1.finance.yahoo.com"
	defaultTimeout  = 15 * time.Second
	defaultRange    = "6mo"
	defaultInterval = "1d"
	providerName    = "yahoo"
	userAgent       = "macromon/1.0"
)

// Client fetches daily candles from the Yahoo Finance chart endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	chartRange string
	interval   string
}

// NewClient creates a Yahoo Finance client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		chartRange: defaultRange,
		interval:   defaultInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// chartResponse mirrors the subset of the chart API payload we consume.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Chart fetches daily candles for a ticker over the given range.
// Null closes, which Yahoo emits for partially traded sessions, are skipped.
func (c *Client) Chart(ctx context.Context, ticker, rng, interval string) ([]model.Candle, error) {
	endpoint := c.baseURL + "/v8/finance/chart/" + url.PathEscape(ticker) +
		"?range=" + url.QueryEscape(rng) + "&interval=" + url.QueryEscape(interval)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build yahoo request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	begin := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RecordFetchLatency(providerName, float64(time.Since(begin).Milliseconds()))
	if err != nil {
		metrics.RecordFetchError(providerName, "transport")
		return nil, fmt.Errorf("yahoo request %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordFetchError(providerName, "http_"+strconv.Itoa(resp.StatusCode))
		return nil, fmt.Errorf("yahoo %s: %w: %d", ticker, ErrUpstreamStatus, resp.StatusCode)
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.RecordFetchError(providerName, "decode")
		return nil, fmt.Errorf("decode yahoo %s: %w", ticker, err)
	}

	if body.Chart.Error != nil {
		metrics.RecordFetchError(providerName, "upstream")
		return nil, fmt.Errorf("yahoo %s: %w: %s", ticker, ErrUpstreamStatus, body.Chart.Error.Code)
	}

	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		metrics.RecordFetchError(providerName, "empty")
		return nil, fmt.Errorf("yahoo %s: %w", ticker, ErrEmptyResult)
	}

	result := body.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	candles := make([]model.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		candles = append(candles, model.Candle{
			TS:    time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}

	metrics.RecordFetch(providerName)
	return candles, nil
}

// Fetch implements the provider contract for watchlist symbols.
func (c *Client) Fetch(ctx context.Context, sym model.Symbol) (model.Series, error) {
	candles, err := c.Chart(ctx, sym.Ticker, c.chartRange, c.interval)
	if err != nil {
		return model.Series{}, err
	}

	s := model.Series{ID: sym.Ticker, Observations: make([]model.Observation, 0, len(candles))}
	for _, cd := range candles {
		s.Observations = append(s.Observations, model.Observation{TS: cd.TS, Value: cd.Close})
	}

	return s, nil
}

// Name returns the provider name used in metrics and logs.
func (c *Client) Name() string {
	return providerName
}
