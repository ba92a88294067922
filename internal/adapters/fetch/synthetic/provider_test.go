package synthetic_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/adapters/fetch/synthetic"
	"github.com/okian/macromon/internal/domain/model"
)

func TestFetch(t *testing.T) {
	anchor := func() time.Time {
		return time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC) // a Friday
	}

	Convey("Given a synthetic provider with a fixed clock", t, func() {
		p := synthetic.NewProvider(synthetic.WithBars(60), synthetic.WithClock(anchor))
		sym := model.Symbol{Name: "S&P 500", Ticker: "^GSPC", Kind: model.KindIndex}

		Convey("When fetching the same symbol twice", func() {
			a, errA := p.Fetch(context.Background(), sym)
			b, errB := p.Fetch(context.Background(), sym)

			Convey("Then the series is deterministic", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(len(a.Observations), ShouldEqual, 60)
				So(a.Observations, ShouldResemble, b.Observations)
			})

			Convey("And observations are ordered oldest first with no weekends", func() {
				for i := 1; i < len(a.Observations); i++ {
					So(a.Observations[i].TS.After(a.Observations[i-1].TS), ShouldBeTrue)
				}
				for _, o := range a.Observations {
					So(o.TS.Weekday(), ShouldNotEqual, time.Saturday)
					So(o.TS.Weekday(), ShouldNotEqual, time.Sunday)
					So(o.Value, ShouldBeGreaterThan, 0)
				}
				last := a.Observations[len(a.Observations)-1]
				So(last.TS, ShouldEqual, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When fetching two different symbols", func() {
			a, _ := p.Fetch(context.Background(), sym)
			b, _ := p.Fetch(context.Background(), model.Symbol{Name: "Nikkei 225", Ticker: "^N225", Kind: model.KindIndex})

			Convey("Then the walks differ", func() {
				So(a.Observations[0].Value, ShouldNotEqual, b.Observations[0].Value)
			})
		})
	})
}
