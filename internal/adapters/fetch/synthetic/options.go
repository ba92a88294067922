package synthetic

import "time"

// Option configures a Provider.
type Option func(*Provider)

// WithBars sets the number of daily bars to generate.
func WithBars(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.bars = n
		}
	}
}

// WithClock sets the time source, used by tests for a fixed anchor date.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}
