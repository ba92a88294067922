// Package signal classifies symbols and regions as bull, neutral or bear
// from the composite trend score.
package signal

import (
	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/metrics"
)

// Default classification thresholds.
const (
	defaultBullMin    = 3 // score >= bullMin -> bull
	defaultNeutralMin = 2 // score >= neutralMin -> neutral, below -> bear
	maxScore          = 4
)

// Classifier turns a stat block into a composite score and a signal.
type Classifier struct {
	bullMin    int
	neutralMin int
}

// NewClassifier creates a classifier with configuration options.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		bullMin:    defaultBullMin,
		neutralMin: defaultNeutralMin,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Score computes the composite trend score in 0..4: one point each for
// price above SMA20, price above SMA50, positive 1M return and positive
// 3M return. Components with a missing moving average contribute nothing.
func (c *Classifier) Score(st model.Stats) int {
	score := 0
	if st.SMA20 > 0 && st.Price > st.SMA20 {
		score++
	}
	if st.SMA50 > 0 && st.Price > st.SMA50 {
		score++
	}
	if st.Return1M > 0 {
		score++
	}
	if st.Return3M > 0 {
		score++
	}
	return score
}

// Classify returns the composite score and its signal bucket.
func (c *Classifier) Classify(st model.Stats) (int, model.Signal) {
	score := c.Score(st)
	metrics.RecordSignalComputed()

	switch {
	case score >= c.bullMin:
		return score, model.SignalBull
	case score >= c.neutralMin:
		return score, model.SignalNeutral
	default:
		return score, model.SignalBear
	}
}

// Aggregate folds member signals into a regional signal: a strict majority
// of bulls or bears decides, anything else is mixed.
func Aggregate(signals []model.Signal) model.Signal {
	if len(signals) == 0 {
		return model.SignalMixed
	}

	var bulls, bears int
	for _, s := range signals {
		switch s {
		case model.SignalBull:
			bulls++
		case model.SignalBear:
			bears++
		}
	}

	half := float64(len(signals)) / 2
	switch {
	case float64(bulls) > half:
		return model.SignalBull
	case float64(bears) > half:
		return model.SignalBear
	default:
		return model.SignalMixed
	}
}
