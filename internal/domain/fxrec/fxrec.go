// Package fxrec generates FX trade ideas from trend, momentum and
// mean-reversion signals. Outputs are quantitative signals only, not
// financial advice.
package fxrec

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/macromon/internal/domain/model"
)

// Default engine thresholds, in percent.
const (
	defaultTrendBand     = 1.0 // distance from SMA50 that counts as a trend
	defaultMomentumBand  = 1.5 // 1M return that counts as momentum
	defaultReversionMove = 3.0 // 3M move considered extended
	defaultReversionKick = 0.5 // 1W counter-move that hints at reversion
	defaultVolNote       = 12.0
	defaultMinScore      = 2
	defaultHighScore     = 3
	defaultMaxIdeas      = 5
)

// Direction of a trade idea.
const (
	DirectionLong  = "LONG"
	DirectionShort = "SHORT"
)

// Confidence buckets.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
)

// Recommendation is one render-ready trade idea.
type Recommendation struct {
	Pair       string   `json:"pair"`
	Direction  string   `json:"direction"`
	Confidence string   `json:"confidence"`
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
	Price      float64  `json:"price"`
	Vol        float64  `json:"vol_20d"`
}

// Engine scores FX pairs and emits directional ideas.
type Engine struct {
	trendBand     float64
	momentumBand  float64
	reversionMove float64
	reversionKick float64
	volNote       float64
	minScore      int
	highScore     int
	maxIdeas      int
}

// NewEngine creates an engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		trendBand:     defaultTrendBand,
		momentumBand:  defaultMomentumBand,
		reversionMove: defaultReversionMove,
		reversionKick: defaultReversionKick,
		volNote:       defaultVolNote,
		minScore:      defaultMinScore,
		highScore:     defaultHighScore,
		maxIdeas:      defaultMaxIdeas,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ScorePair scores a single pair and collects the reasons behind the score.
func (e *Engine) ScorePair(st model.Stats) (int, []string) {
	score := 0
	var reasons []string

	// Trend following: price above/below the 50-day SMA.
	switch {
	case st.VsSMA50 > e.trendBand:
		score += 2
		reasons = append(reasons, fmt.Sprintf("Trading %.1f%% above 50-day SMA", st.VsSMA50))
	case st.VsSMA50 < -e.trendBand:
		score -= 2
		reasons = append(reasons, fmt.Sprintf("Trading %.1f%% below 50-day SMA", math.Abs(st.VsSMA50)))
	}

	// Momentum: 1-month return.
	switch {
	case st.Return1M > e.momentumBand:
		score++
		reasons = append(reasons, fmt.Sprintf("Strong 1M momentum (+%.1f%%)", st.Return1M))
	case st.Return1M < -e.momentumBand:
		score--
		reasons = append(reasons, fmt.Sprintf("Weak 1M momentum (%.1f%%)", st.Return1M))
	}

	// Mean reversion: extended 3M move with the 1W leg turning over.
	switch {
	case st.Return3M > e.reversionMove && st.Return1W < -e.reversionKick:
		score--
		reasons = append(reasons, "Possible mean-reversion after extended rally")
	case st.Return3M < -e.reversionMove && st.Return1W > e.reversionKick:
		score++
		reasons = append(reasons, "Possible mean-reversion after extended sell-off")
	}

	// Volatility context is an annotation, not a score component.
	if st.Vol20 > e.volNote {
		reasons = append(reasons, fmt.Sprintf("Elevated volatility (%.1f%% annualized)", st.Vol20))
	}

	return score, reasons
}

// Generate scores every pair snapshot and returns the strongest ideas,
// ordered by absolute score, capped at the configured maximum.
func (e *Engine) Generate(snaps []model.Snapshot) []Recommendation {
	recs := make([]Recommendation, 0, len(snaps))

	for _, snap := range snaps {
		if snap.Symbol.Kind != model.KindFX {
			continue
		}

		score, reasons := e.ScorePair(snap.Stats)
		if abs(score) < e.minScore {
			continue
		}

		direction := DirectionShort
		if score > 0 {
			direction = DirectionLong
		}
		confidence := ConfidenceMedium
		if abs(score) >= e.highScore {
			confidence = ConfidenceHigh
		}

		recs = append(recs, Recommendation{
			Pair:       snap.Symbol.Name,
			Direction:  direction,
			Confidence: confidence,
			Score:      score,
			Reasons:    reasons,
			Price:      snap.Stats.Price,
			Vol:        snap.Stats.Vol20,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return abs(recs[i].Score) > abs(recs[j].Score)
	})

	if len(recs) > e.maxIdeas {
		recs = recs[:e.maxIdeas]
	}
	return recs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
