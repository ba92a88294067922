// Package fxrec generates FX trade ideas from trend, momentum and
// mean-reversion signals.
package fxrec

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTrendBand sets the % distance from SMA50 that counts as a trend.
func WithTrendBand(pct float64) Option {
	return func(e *Engine) {
		if pct > 0 {
			e.trendBand = pct
		}
	}
}

// WithMomentumBand sets the 1M return magnitude that counts as momentum.
func WithMomentumBand(pct float64) Option {
	return func(e *Engine) {
		if pct > 0 {
			e.momentumBand = pct
		}
	}
}

// WithReversionBands sets the extended 3M move and the 1W counter-move
// that together hint at mean reversion.
func WithReversionBands(movePct, kickPct float64) Option {
	return func(e *Engine) {
		if movePct > 0 && kickPct > 0 {
			e.reversionMove = movePct
			e.reversionKick = kickPct
		}
	}
}

// WithVolNoteThreshold sets the annualized vol above which ideas carry a
// volatility annotation.
func WithVolNoteThreshold(pct float64) Option {
	return func(e *Engine) {
		if pct > 0 {
			e.volNote = pct
		}
	}
}

// WithMinScore sets the minimum absolute score that emits an idea.
func WithMinScore(score int) Option {
	return func(e *Engine) {
		if score > 0 {
			e.minScore = score
		}
	}
}

// WithMaxIdeas caps the number of ideas returned per generation.
func WithMaxIdeas(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxIdeas = n
		}
	}
}
