package fred

import "net/http"

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the FRED API base URL.
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

// WithWindow sets the lookback window in days for Fetch.
func WithWindow(days int) Option {
	return func(c *Client) {
		if days > 0 {
			c.windowDays = days
		}
	}
}
