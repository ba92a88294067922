// Package model contains domain models passed between layers.
package model

import "time"

// Kind classifies a watchlist symbol by its upstream source and role.
type Kind string

// Symbol kinds.
const (
	KindIndex Kind = "index" // equity index, Yahoo Finance chart API
	KindFX    Kind = "fx"    // currency pair, Yahoo Finance chart API
	KindMacro Kind = "macro" // macro ticker (VIX, DXY, gold, ...), Yahoo Finance
	KindFRED  Kind = "fred"  // FRED observation series
)

// Regions used for market-direction grouping.
const (
	RegionUS     = "us"
	RegionEurope = "europe"
	RegionAsia   = "asia"
)

// Signal is a composite trend classification for a symbol or a region.
type Signal string

// Signal values.
const (
	SignalBull    Signal = "bull"
	SignalNeutral Signal = "neutral"
	SignalBear    Signal = "bear"
	SignalMixed   Signal = "mixed" // regional aggregate only
)

// Symbol identifies one watchlist entry.
type Symbol struct {
	Name   string `json:"name"`   // display name, e.g. "S&P 500"
	Ticker string `json:"ticker"` // upstream id: "^GSPC" for Yahoo, "DGS10" for FRED
	Kind   Kind   `json:"kind"`
	Region string `json:"region,omitempty"` // set for KindIndex, empty otherwise
}

// Key returns the cache/store key for the symbol.
func (s Symbol) Key() string {
	return string(s.Kind) + ":" + s.Ticker
}

// Candle is one daily bar from the Yahoo chart API.
type Candle struct {
	TS     time.Time `json:"ts"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Observation is one dated value of a FRED series or a close price.
type Observation struct {
	TS    time.Time `json:"ts"`
	Value float64   `json:"value"`
}

// Series is an ordered run of observations for one upstream id.
type Series struct {
	ID           string        `json:"id"`
	Observations []Observation `json:"observations"`
}

// Last returns the most recent observation and true, or false when empty.
func (s Series) Last() (Observation, bool) {
	if len(s.Observations) == 0 {
		return Observation{}, false
	}
	return s.Observations[len(s.Observations)-1], true
}

// Values returns the observation values in order.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s.Observations))
	for i, o := range s.Observations {
		vals[i] = o.Value
	}
	return vals
}

// Stats holds the indicators derived from a symbol's close series.
type Stats struct {
	Price     float64 `json:"price"`
	PrevClose float64 `json:"prev_close"`
	SMA20     float64 `json:"sma20"`
	SMA50     float64 `json:"sma50"`
	VsSMA50   float64 `json:"vs_sma50"` // % distance of price from SMA50
	Return1W  float64 `json:"return_1w"`
	Return1M  float64 `json:"return_1m"`
	Return3M  float64 `json:"return_3m"`
	Vol20     float64 `json:"vol_20d"` // 20-day realized vol, % annualized
}

// Change1D returns the absolute move since the previous close.
func (st Stats) Change1D() float64 {
	return st.Price - st.PrevClose
}

// ChangePct1D returns the % move since the previous close.
func (st Stats) ChangePct1D() float64 {
	if st.PrevClose == 0 {
		return 0
	}
	return (st.Price/st.PrevClose - 1) * 100
}

// Snapshot is the computed state of one symbol after a refresh.
type Snapshot struct {
	Symbol    Symbol    `json:"symbol"`
	Series    Series    `json:"series"` // daily closes (Yahoo) or raw observations (FRED)
	Stats     Stats     `json:"stats"`
	Score     int       `json:"score"`  // composite trend score, 0..4
	Signal    Signal    `json:"signal"` // derived from Score
	FetchedAt time.Time `json:"fetched_at"`
}

// FetchJob is one unit of work for the refresh worker pool.
type FetchJob struct {
	JobID     string // unique id for in-flight tracking
	Symbol    Symbol
	Requested time.Time
}
