package fxrec_test

import (
	"testing"

	"github.com/okian/macromon/internal/domain/fxrec"
	"github.com/okian/macromon/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func fxSnap(name string, st model.Stats) model.Snapshot {
	return model.Snapshot{
		Symbol: model.Symbol{Name: name, Ticker: name, Kind: model.KindFX},
		Stats:  st,
	}
}

func TestScorePair(t *testing.T) {
	Convey("Given a default engine", t, func() {
		e := fxrec.NewEngine()

		Convey("When a pair trends above the SMA with momentum", func() {
			score, reasons := e.ScorePair(model.Stats{VsSMA50: 2.4, Return1M: 2.0})

			Convey("Then trend and momentum stack", func() {
				So(score, ShouldEqual, 3)
				So(len(reasons), ShouldEqual, 2)
				So(reasons[0], ShouldContainSubstring, "above 50-day SMA")
			})
		})

		Convey("When a pair trends below the SMA with weak momentum", func() {
			score, reasons := e.ScorePair(model.Stats{VsSMA50: -1.8, Return1M: -2.2})

			So(score, ShouldEqual, -3)
			So(reasons[0], ShouldContainSubstring, "below 50-day SMA")
		})

		Convey("When an extended rally starts reversing", func() {
			score, reasons := e.ScorePair(model.Stats{Return3M: 4.0, Return1W: -0.8})

			So(score, ShouldEqual, -1)
			So(reasons[0], ShouldContainSubstring, "extended rally")
		})

		Convey("When an extended sell-off starts reversing", func() {
			score, reasons := e.ScorePair(model.Stats{Return3M: -4.0, Return1W: 0.8})

			So(score, ShouldEqual, 1)
			So(reasons[0], ShouldContainSubstring, "extended sell-off")
		})

		Convey("When volatility is elevated", func() {
			score, reasons := e.ScorePair(model.Stats{Vol20: 14.2})

			Convey("Then the annotation does not affect the score", func() {
				So(score, ShouldEqual, 0)
				So(reasons[0], ShouldContainSubstring, "Elevated volatility")
			})
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Given pair snapshots", t, func() {
		e := fxrec.NewEngine()

		// Scores: EUR/USD +3, USD/JPY -2, GBP/USD 0, AUD/USD -3.
		snaps := []model.Snapshot{
			fxSnap("EUR/USD", model.Stats{Price: 1.09, VsSMA50: 2.2, Return1M: 2.0}),
			fxSnap("USD/JPY", model.Stats{Price: 148.2, VsSMA50: -1.5}),
			fxSnap("GBP/USD", model.Stats{Price: 1.27, VsSMA50: 0.2, Return1M: 0.3}),
			fxSnap("AUD/USD", model.Stats{Price: 0.66, VsSMA50: -2.0, Return1M: -2.0}),
		}

		Convey("When generating ideas", func() {
			recs := e.Generate(snaps)

			Convey("Then only scores at or above the minimum emit", func() {
				So(len(recs), ShouldEqual, 3)
			})

			Convey("And ideas are ordered by absolute score", func() {
				So(recs[0].Score, ShouldEqual, 3)
				So(recs[0].Direction, ShouldEqual, fxrec.DirectionLong)
				So(recs[0].Confidence, ShouldEqual, fxrec.ConfidenceHigh)
			})

			Convey("And shorts carry the SHORT direction with medium confidence", func() {
				So(recs[2].Direction, ShouldEqual, fxrec.DirectionShort)
				So(recs[2].Confidence, ShouldEqual, fxrec.ConfidenceMedium)
			})
		})

		Convey("When capping the idea count", func() {
			capped := fxrec.NewEngine(fxrec.WithMaxIdeas(1))
			recs := capped.Generate(snaps)
			So(len(recs), ShouldEqual, 1)
		})

		Convey("When non-FX snapshots are present", func() {
			mixed := append(snaps, model.Snapshot{
				Symbol: model.Symbol{Name: "S&P 500", Ticker: "^GSPC", Kind: model.KindIndex},
				Stats:  model.Stats{VsSMA50: 5.0, Return1M: 3.0},
			})
			recs := e.Generate(mixed)

			Convey("Then they are ignored", func() {
				for _, r := range recs {
					So(r.Pair, ShouldNotEqual, "S&P 500")
				}
			})
		})
	})
}
