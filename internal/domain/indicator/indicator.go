// Package indicator computes the derived statistics the boards are built
// from: moving averages, lookback returns and realized volatility.
package indicator

import (
	"math"

	"github.com/okian/macromon/internal/domain/model"
)

// Lookbacks in daily bars.
const (
	LookbackWeek    = 5  // ~1 trading week
	LookbackMonth   = 21 // ~1 trading month
	LookbackQuarter = 65 // ~3 trading months
	VolWindow       = 20 // realized vol window
	TradingDays     = 252
)

// SMA returns the simple moving average of the last n values.
// Returns false when fewer than n values are available.
func SMA(vals []float64, n int) (float64, bool) {
	if n <= 0 || len(vals) < n {
		return 0, false
	}
	var sum float64
	for _, v := range vals[len(vals)-n:] {
		sum += v
	}
	return sum / float64(n), true
}

// PctChange returns the % change between the last value and the value
// lookback bars earlier. Returns false when the series is too short.
func PctChange(vals []float64, lookback int) (float64, bool) {
	if lookback <= 0 || len(vals) <= lookback {
		return 0, false
	}
	base := vals[len(vals)-1-lookback]
	if base == 0 {
		return 0, false
	}
	return (vals[len(vals)-1]/base - 1) * 100, true
}

// RealizedVol returns the annualized realized volatility (%) of the last
// window daily returns, using the sample standard deviation.
func RealizedVol(vals []float64, window int) (float64, bool) {
	if window < 2 || len(vals) < window+1 {
		return 0, false
	}
	rets := make([]float64, 0, window)
	tail := vals[len(vals)-window-1:]
	for i := 1; i < len(tail); i++ {
		if tail[i-1] == 0 {
			return 0, false
		}
		rets = append(rets, tail[i]/tail[i-1]-1)
	}

	var mean float64
	for _, r := range rets {
		mean += r
	}
	mean /= float64(len(rets))

	var ss float64
	for _, r := range rets {
		d := r - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(rets)-1))

	return std * math.Sqrt(TradingDays) * 100, true
}

// Compute derives the full stat block from an ordered close series.
// Missing lookbacks leave the corresponding field at zero, matching how the
// dashboard renders short series.
func Compute(vals []float64) model.Stats {
	var st model.Stats
	if len(vals) == 0 {
		return st
	}

	st.Price = vals[len(vals)-1]
	if len(vals) > 1 {
		st.PrevClose = vals[len(vals)-2]
	}

	if sma, ok := SMA(vals, 20); ok {
		st.SMA20 = sma
	}
	if sma, ok := SMA(vals, 50); ok {
		st.SMA50 = sma
		if sma != 0 {
			st.VsSMA50 = (st.Price/sma - 1) * 100
		}
	}
	if r, ok := PctChange(vals, LookbackWeek); ok {
		st.Return1W = r
	}
	if r, ok := PctChange(vals, LookbackMonth); ok {
		st.Return1M = r
	}
	if r, ok := PctChange(vals, LookbackQuarter); ok {
		st.Return3M = r
	}
	if v, ok := RealizedVol(vals, VolWindow); ok {
		st.Vol20 = v
	}

	return st
}
