// Package signal classifies symbols and regions as bull, neutral or bear.
package signal

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithBullThreshold sets the minimum score classified as bull.
func WithBullThreshold(min int) Option {
	return func(c *Classifier) {
		if min > 0 && min <= maxScore {
			c.bullMin = min
		}
	}
}

// WithNeutralThreshold sets the minimum score classified as neutral.
func WithNeutralThreshold(min int) Option {
	return func(c *Classifier) {
		if min > 0 && min <= maxScore {
			c.neutralMin = min
		}
	}
}
