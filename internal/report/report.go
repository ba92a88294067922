// Package report builds renderable chart and table documents from
// computed snapshots. The output shapes are plain JSON the dashboard
// front end consumes directly.
package report

import (
	"fmt"
	"time"

	"github.com/okian/macromon/internal/domain/fxrec"
	"github.com/okian/macromon/internal/domain/indicator"
	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/internal/domain/yield"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "right"
}

// Document is a complete saved report payload.
type Document struct {
	Title       string        `json:"title"`
	GeneratedAt time.Time     `json:"generated_at"`
	Charts      []ChartConfig `json:"charts"`
	Tables      []TableData   `json:"tables"`
}

const dateLabel = "Jan 02"

// PriceChart renders a symbol's closes with its moving averages.
func PriceChart(snap model.Snapshot) ChartConfig {
	vals := snap.Series.Values()
	closes := make([]ChartPoint, 0, len(vals))
	sma20 := make([]ChartPoint, 0, len(vals))
	sma50 := make([]ChartPoint, 0, len(vals))

	for i, obs := range snap.Series.Observations {
		label := obs.TS.Format(dateLabel)
		closes = append(closes, ChartPoint{Label: label, Value: round2(obs.Value)})
		if m, ok := indicator.SMA(vals[:i+1], 20); ok {
			sma20 = append(sma20, ChartPoint{Label: label, Value: round2(m)})
		}
		if m, ok := indicator.SMA(vals[:i+1], 50); ok {
			sma50 = append(sma50, ChartPoint{Label: label, Value: round2(m)})
		}
	}

	series := []ChartSeries{{Name: snap.Symbol.Name, Data: closes}}
	if len(sma20) > 0 {
		series = append(series, ChartSeries{Name: "SMA 20", Data: sma20})
	}
	if len(sma50) > 0 {
		series = append(series, ChartSeries{Name: "SMA 50", Data: sma50})
	}

	cfg := ChartConfig{
		ChartType:  "line",
		Title:      snap.Symbol.Name,
		XAxis:      "Date",
		YAxis:      "Price",
		Series:     series,
		ShowLegend: true,
		ShowGrid:   true,
	}
	cfg.Colors = assignColors(len(cfg.Series))
	return cfg
}

// YieldCurveChart renders current, week-ago and month-ago curves.
func YieldCurveChart(curve yield.Curve) ChartConfig {
	current := make([]ChartPoint, 0, len(curve.Points))
	weekAgo := make([]ChartPoint, 0, len(curve.Points))
	monthAgo := make([]ChartPoint, 0, len(curve.Points))

	for _, p := range curve.Points {
		current = append(current, ChartPoint{Label: p.Tenor, Value: round2(p.Current)})
		weekAgo = append(weekAgo, ChartPoint{Label: p.Tenor, Value: round2(p.WeekAgo)})
		monthAgo = append(monthAgo, ChartPoint{Label: p.Tenor, Value: round2(p.MonthAgo)})
	}

	title := "US Treasury Yield Curve"
	if curve.Inverted {
		title += " (inverted)"
	}

	cfg := ChartConfig{
		ChartType: "line",
		Title:     title,
		XAxis:     "Tenor",
		YAxis:     "Yield %",
		Series: []ChartSeries{
			{Name: "Current", Data: current},
			{Name: "1W ago", Data: weekAgo},
			{Name: "1M ago", Data: monthAgo},
		},
		ShowLegend: true,
		ShowGrid:   true,
	}
	cfg.Colors = assignColors(len(cfg.Series))
	return cfg
}

// MarketTable renders a snapshot board as rows.
func MarketTable(title string, snaps []model.Snapshot) TableData {
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.Symbol.Name,
			fmt.Sprintf("%.2f", s.Stats.Price),
			fmt.Sprintf("%+.2f%%", s.Stats.ChangePct1D()),
			fmt.Sprintf("%+.2f%%", s.Stats.Return1M),
			fmt.Sprintf("%.1f%%", s.Stats.Vol20),
			string(s.Signal),
		})
	}

	return TableData{
		Title: title,
		Columns: []Column{
			{Key: "name", Label: "Name", Type: "text", Align: "left"},
			{Key: "price", Label: "Price", Type: "number", Align: "right"},
			{Key: "chg1d", Label: "1D", Type: "percent", Align: "right"},
			{Key: "chg1m", Label: "1M", Type: "percent", Align: "right"},
			{Key: "vol", Label: "Vol 20D", Type: "percent", Align: "right"},
			{Key: "signal", Label: "Signal", Type: "text", Align: "left"},
		},
		Rows: rows,
	}
}

// RecommendationTable renders FX trade ideas as rows.
func RecommendationTable(recs []fxrec.Recommendation) TableData {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.Pair,
			r.Direction,
			r.Confidence,
			fmt.Sprintf("%+d", r.Score),
			fmt.Sprintf("%.4f", r.Price),
		})
	}

	return TableData{
		Title: "FX Trade Ideas",
		Columns: []Column{
			{Key: "pair", Label: "Pair", Type: "text", Align: "left"},
			{Key: "direction", Label: "Direction", Type: "text", Align: "left"},
			{Key: "confidence", Label: "Confidence", Type: "text", Align: "left"},
			{Key: "score", Label: "Score", Type: "number", Align: "right"},
			{Key: "price", Label: "Price", Type: "number", Align: "right"},
		},
		Rows: rows,
	}
}

func assignColors(n int) []string {
	colors := make([]string, n)
	for i := 0; i < n; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

func round2(v float64) float64 {
	return float64(int(v*100+copysignHalf(v))) / 100
}

func copysignHalf(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}
