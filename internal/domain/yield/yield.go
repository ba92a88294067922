// Package yield assembles the treasury yield curve from per-tenor FRED
// series and derives the spread and inversion views.
package yield

import (
	"github.com/okian/macromon/internal/domain/model"
)

// Lookback offsets in observations, matching the curve overlays.
const (
	weekAgoOffset  = 5
	monthAgoOffset = 21
)

// Tenor binds a curve label to its FRED series id, in maturity order.
type Tenor struct {
	Label    string
	SeriesID string
}

// Tenors lists the curve points from shortest to longest maturity.
var Tenors = []Tenor{
	{Label: "1M", SeriesID: "DGS1MO"},
	{Label: "3M", SeriesID: "DGS3MO"},
	{Label: "6M", SeriesID: "DGS6MO"},
	{Label: "1Y", SeriesID: "DGS1"},
	{Label: "2Y", SeriesID: "DGS2"},
	{Label: "3Y", SeriesID: "DGS3"},
	{Label: "5Y", SeriesID: "DGS5"},
	{Label: "7Y", SeriesID: "DGS7"},
	{Label: "10Y", SeriesID: "DGS10"},
	{Label: "20Y", SeriesID: "DGS20"},
	{Label: "30Y", SeriesID: "DGS30"},
}

// CurvePoint is one tenor of the curve with its recent history.
type CurvePoint struct {
	Tenor    string  `json:"tenor"`
	Current  float64 `json:"current"`
	WeekAgo  float64 `json:"week_ago"`
	MonthAgo float64 `json:"month_ago"`
}

// Curve is the assembled treasury curve snapshot.
type Curve struct {
	Points   []CurvePoint `json:"points"`
	Inverted bool         `json:"inverted"` // 2Y above 10Y
}

// at returns the observation value offset bars from the end, clamping to
// the oldest observation for short series.
func at(obs []model.Observation, offset int) float64 {
	if len(obs) == 0 {
		return 0
	}
	idx := len(obs) - 1 - offset
	if idx < 0 {
		idx = 0
	}
	return obs[idx].Value
}

// Build assembles the curve from a series lookup. Tenors with no data are
// skipped so a partial FRED outage still yields a drawable curve.
func Build(lookup func(seriesID string) (model.Series, bool)) Curve {
	var c Curve
	byTenor := make(map[string]float64, len(Tenors))

	for _, t := range Tenors {
		s, ok := lookup(t.SeriesID)
		if !ok || len(s.Observations) == 0 {
			continue
		}
		obs := s.Observations
		p := CurvePoint{
			Tenor:    t.Label,
			Current:  at(obs, 0),
			WeekAgo:  at(obs, weekAgoOffset),
			MonthAgo: at(obs, monthAgoOffset),
		}
		c.Points = append(c.Points, p)
		byTenor[t.Label] = p.Current
	}

	two, okTwo := byTenor["2Y"]
	ten, okTen := byTenor["10Y"]
	c.Inverted = okTwo && okTen && two > ten

	return c
}

// Spread2s10s returns the 10Y minus 2Y spread per observation date, built
// from the dedicated FRED series when available.
func Spread2s10s(lookup func(seriesID string) (model.Series, bool)) (model.Series, bool) {
	return lookup("T10Y2Y")
}

// RealYield10 returns the 10Y TIPS real yield series.
func RealYield10(lookup func(seriesID string) (model.Series, bool)) (model.Series, bool) {
	return lookup("DFII10")
}

// Breakeven10 returns the 10Y breakeven inflation series.
func Breakeven10(lookup func(seriesID string) (model.Series, bool)) (model.Series, bool) {
	return lookup("T10YIE")
}
