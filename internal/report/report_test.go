package report_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/domain/fxrec"
	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/internal/domain/yield"
	"github.com/okian/macromon/internal/report"
)

func rampSnapshot(n int) model.Snapshot {
	s := model.Series{ID: "^GSPC"}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		s.Observations = append(s.Observations, model.Observation{
			TS:    base.AddDate(0, 0, i),
			Value: 100 + float64(i),
		})
	}
	return model.Snapshot{
		Symbol: model.Symbol{Name: "S&P 500", Ticker: "^GSPC", Kind: model.KindIndex},
		Series: s,
		Stats:  model.Stats{Price: 100 + float64(n-1)},
		Signal: model.SignalBull,
	}
}

func TestPriceChart(t *testing.T) {
	Convey("Given a snapshot with 80 daily bars", t, func() {
		snap := rampSnapshot(80)

		Convey("When the price chart is built", func() {
			cfg := report.PriceChart(snap)

			Convey("Then it contains closes and both moving averages", func() {
				So(cfg.ChartType, ShouldEqual, "line")
				So(len(cfg.Series), ShouldEqual, 3)
				So(cfg.Series[0].Name, ShouldEqual, "S&P 500")
				So(len(cfg.Series[0].Data), ShouldEqual, 80)
				So(cfg.Series[1].Name, ShouldEqual, "SMA 20")
				So(len(cfg.Series[1].Data), ShouldEqual, 61)
				So(cfg.Series[2].Name, ShouldEqual, "SMA 50")
				So(len(cfg.Series[2].Data), ShouldEqual, 31)
				So(len(cfg.Colors), ShouldEqual, 3)
			})
		})
	})

	Convey("Given a snapshot too short for averages", t, func() {
		snap := rampSnapshot(10)

		Convey("When the price chart is built", func() {
			cfg := report.PriceChart(snap)

			Convey("Then only the close series is present", func() {
				So(len(cfg.Series), ShouldEqual, 1)
			})
		})
	})
}

func TestYieldCurveChart(t *testing.T) {
	Convey("Given an inverted curve", t, func() {
		curve := yield.Curve{
			Points: []yield.CurvePoint{
				{Tenor: "2Y", Current: 4.8, WeekAgo: 4.75, MonthAgo: 4.6},
				{Tenor: "10Y", Current: 4.3, WeekAgo: 4.35, MonthAgo: 4.4},
			},
			Inverted: true,
		}

		Convey("When the chart is built", func() {
			cfg := report.YieldCurveChart(curve)

			Convey("Then it flags the inversion and carries three series", func() {
				So(cfg.Title, ShouldContainSubstring, "inverted")
				So(len(cfg.Series), ShouldEqual, 3)
				So(cfg.Series[0].Data[0].Label, ShouldEqual, "2Y")
				So(cfg.Series[0].Data[1].Value, ShouldEqual, 4.3)
			})
		})
	})
}

func TestTables(t *testing.T) {
	Convey("Given snapshots and recommendations", t, func() {
		snaps := []model.Snapshot{{
			Symbol: model.Symbol{Name: "S&P 500", Ticker: "^GSPC", Kind: model.KindIndex},
			Stats:  model.Stats{Price: 5900, PrevClose: 5850, Return1M: 2.1, Vol20: 14.2},
			Signal: model.SignalBull,
		}}
		recs := []fxrec.Recommendation{{
			Pair:       "EUR/USD",
			Direction:  fxrec.DirectionLong,
			Confidence: fxrec.ConfidenceHigh,
			Score:      3,
			Price:      1.0931,
		}}

		Convey("When the market table is built", func() {
			tbl := report.MarketTable("US Markets", snaps)

			So(len(tbl.Columns), ShouldEqual, 6)
			So(len(tbl.Rows), ShouldEqual, 1)
			So(tbl.Rows[0][0], ShouldEqual, "S&P 500")
			So(tbl.Rows[0][5], ShouldEqual, string(model.SignalBull))
		})

		Convey("When the recommendation table is built", func() {
			tbl := report.RecommendationTable(recs)

			So(len(tbl.Rows), ShouldEqual, 1)
			So(tbl.Rows[0][1], ShouldEqual, fxrec.DirectionLong)
			So(tbl.Rows[0][3], ShouldEqual, "+3")
			So(tbl.Rows[0][4], ShouldEqual, "1.0931")
		})
	})
}
