package signal_test

import (
	"testing"

	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/internal/domain/signal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given a default classifier", t, func() {
		c := signal.NewClassifier()

		Convey("When every component is positive", func() {
			st := model.Stats{Price: 110, SMA20: 105, SMA50: 100, Return1M: 2, Return3M: 5}
			score, sig := c.Classify(st)

			Convey("Then the symbol is a bull", func() {
				So(score, ShouldEqual, 4)
				So(sig, ShouldEqual, model.SignalBull)
			})
		})

		Convey("When exactly two components are positive", func() {
			st := model.Stats{Price: 110, SMA20: 105, SMA50: 100, Return1M: -2, Return3M: -5}
			score, sig := c.Classify(st)

			Convey("Then the symbol is neutral", func() {
				So(score, ShouldEqual, 2)
				So(sig, ShouldEqual, model.SignalNeutral)
			})
		})

		Convey("When at most one component is positive", func() {
			st := model.Stats{Price: 90, SMA20: 105, SMA50: 100, Return1M: -2, Return3M: 1}
			score, sig := c.Classify(st)

			Convey("Then the symbol is a bear", func() {
				So(score, ShouldEqual, 1)
				So(sig, ShouldEqual, model.SignalBear)
			})
		})

		Convey("When moving averages are missing", func() {
			st := model.Stats{Price: 90, Return1M: 1, Return3M: 1}
			score, _ := c.Classify(st)

			Convey("Then SMA components contribute nothing", func() {
				So(score, ShouldEqual, 2)
			})
		})
	})

	Convey("Given custom thresholds", t, func() {
		c := signal.NewClassifier(
			signal.WithBullThreshold(4),
			signal.WithNeutralThreshold(3),
		)

		st := model.Stats{Price: 110, SMA20: 105, SMA50: 100, Return1M: 2, Return3M: -5}
		score, sig := c.Classify(st)

		Convey("Then the stricter buckets apply", func() {
			So(score, ShouldEqual, 3)
			So(sig, ShouldEqual, model.SignalNeutral)
		})
	})
}

func TestAggregate(t *testing.T) {
	Convey("Given member signals for a region", t, func() {
		Convey("When bulls hold a strict majority", func() {
			sig := signal.Aggregate([]model.Signal{
				model.SignalBull, model.SignalBull, model.SignalBear,
			})
			So(sig, ShouldEqual, model.SignalBull)
		})

		Convey("When bears hold a strict majority", func() {
			sig := signal.Aggregate([]model.Signal{
				model.SignalBear, model.SignalBear, model.SignalNeutral,
			})
			So(sig, ShouldEqual, model.SignalBear)
		})

		Convey("When neither side has a majority", func() {
			sig := signal.Aggregate([]model.Signal{
				model.SignalBull, model.SignalBear, model.SignalNeutral, model.SignalNeutral,
			})
			So(sig, ShouldEqual, model.SignalMixed)
		})

		Convey("When an even split occurs", func() {
			sig := signal.Aggregate([]model.Signal{model.SignalBull, model.SignalBear})
			So(sig, ShouldEqual, model.SignalMixed)
		})

		Convey("When no members exist", func() {
			So(signal.Aggregate(nil), ShouldEqual, model.SignalMixed)
		})
	})
}
