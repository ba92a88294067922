package model_test

import (
	"testing"
	"time"

	"github.com/okian/macromon/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSymbolKey(t *testing.T) {
	Convey("Given watchlist symbols", t, func() {
		Convey("When computing keys", func() {
			spx := model.Symbol{Name: "S&P 500", Ticker: "^GSPC", Kind: model.KindIndex, Region: model.RegionUS}
			dgs10 := model.Symbol{Name: "UST 10Y", Ticker: "DGS10", Kind: model.KindFRED}

			Convey("Then keys should be kind-qualified", func() {
				So(spx.Key(), ShouldEqual, "index:^GSPC")
				So(dgs10.Key(), ShouldEqual, "fred:DGS10")
			})

			Convey("And keys should be unique across the default watchlist", func() {
				seen := make(map[string]bool)
				for _, sym := range model.DefaultWatchlist() {
					So(seen[sym.Key()], ShouldBeFalse)
					seen[sym.Key()] = true
				}
			})
		})
	})
}

func TestSeries(t *testing.T) {
	Convey("Given a series", t, func() {
		now := time.Now()
		s := model.Series{
			ID: "DGS10",
			Observations: []model.Observation{
				{TS: now.Add(-48 * time.Hour), Value: 4.1},
				{TS: now.Add(-24 * time.Hour), Value: 4.2},
				{TS: now, Value: 4.3},
			},
		}

		Convey("When reading the last observation", func() {
			last, ok := s.Last()
			So(ok, ShouldBeTrue)
			So(last.Value, ShouldEqual, 4.3)
		})

		Convey("When extracting values", func() {
			So(s.Values(), ShouldResemble, []float64{4.1, 4.2, 4.3})
		})

		Convey("When the series is empty", func() {
			empty := model.Series{ID: "DGS10"}
			_, ok := empty.Last()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestStatsChange(t *testing.T) {
	Convey("Given stats with a prior close", t, func() {
		st := model.Stats{Price: 102, PrevClose: 100}

		Convey("Then 1-day change should be derived", func() {
			So(st.Change1D(), ShouldEqual, 2)
			So(st.ChangePct1D(), ShouldAlmostEqual, 2.0, 1e-9)
		})

		Convey("And a zero prior close should not divide", func() {
			So(model.Stats{Price: 10}.ChangePct1D(), ShouldEqual, 0)
		})
	})
}

func TestDefaultWatchlist(t *testing.T) {
	Convey("Given the default watchlist", t, func() {
		list := model.DefaultWatchlist()

		Convey("Then it should cover all kinds", func() {
			kinds := make(map[model.Kind]int)
			for _, sym := range list {
				kinds[sym.Kind]++
			}
			So(kinds[model.KindIndex], ShouldEqual, 12)
			So(kinds[model.KindFX], ShouldEqual, 10)
			So(kinds[model.KindMacro], ShouldEqual, 6)
			So(kinds[model.KindFRED], ShouldEqual, 16)
		})

		Convey("And every index should carry a region", func() {
			for _, sym := range model.DefaultIndices() {
				So(sym.Region, ShouldBeIn, model.RegionUS, model.RegionEurope, model.RegionAsia)
			}
		})
	})
}
