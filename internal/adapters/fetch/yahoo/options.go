package yahoo

import "net/http"

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the chart API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRange sets the chart range used by Fetch, e.g. "6mo" or "1y".
func WithRange(r string) Option {
	return func(c *Client) {
		if r != "" {
			c.chartRange = r
		}
	}
}

// WithInterval sets the bar interval used by Fetch, e.g. "1d".
func WithInterval(iv string) Option {
	return func(c *Client) {
		if iv != "" {
			c.interval = iv
		}
	}
}
