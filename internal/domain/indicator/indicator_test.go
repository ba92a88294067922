package indicator_test

import (
	"math"
	"testing"

	"github.com/okian/macromon/internal/domain/indicator"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSMA(t *testing.T) {
	Convey("Given a close series", t, func() {
		vals := []float64{1, 2, 3, 4, 5}

		Convey("When computing a 3-period SMA", func() {
			sma, ok := indicator.SMA(vals, 3)
			So(ok, ShouldBeTrue)
			So(sma, ShouldEqual, 4) // (3+4+5)/3
		})

		Convey("When the window exceeds the series", func() {
			_, ok := indicator.SMA(vals, 6)
			So(ok, ShouldBeFalse)
		})

		Convey("When the window is not positive", func() {
			_, ok := indicator.SMA(vals, 0)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestPctChange(t *testing.T) {
	Convey("Given a close series", t, func() {
		vals := []float64{100, 101, 102, 103, 104, 110}

		Convey("When computing a 5-bar change", func() {
			r, ok := indicator.PctChange(vals, 5)
			So(ok, ShouldBeTrue)
			So(r, ShouldAlmostEqual, 10.0, 1e-9) // 110 vs 100
		})

		Convey("When the lookback exceeds the series", func() {
			_, ok := indicator.PctChange(vals, 6)
			So(ok, ShouldBeFalse)
		})

		Convey("When the base value is zero", func() {
			_, ok := indicator.PctChange([]float64{0, 1, 2}, 2)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRealizedVol(t *testing.T) {
	Convey("Given close series", t, func() {
		Convey("When the series is flat", func() {
			vals := make([]float64, 30)
			for i := range vals {
				vals[i] = 100
			}
			vol, ok := indicator.RealizedVol(vals, 20)
			So(ok, ShouldBeTrue)
			So(vol, ShouldEqual, 0)
		})

		Convey("When the series alternates", func() {
			vals := make([]float64, 30)
			for i := range vals {
				if i%2 == 0 {
					vals[i] = 100
				} else {
					vals[i] = 101
				}
			}
			vol, ok := indicator.RealizedVol(vals, 20)
			So(ok, ShouldBeTrue)
			So(vol, ShouldBeGreaterThan, 0)
		})

		Convey("When the series is too short", func() {
			_, ok := indicator.RealizedVol([]float64{1, 2, 3}, 20)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestCompute(t *testing.T) {
	Convey("Given a trending close series", t, func() {
		// 80 bars climbing from 100 to 179
		vals := make([]float64, 80)
		for i := range vals {
			vals[i] = 100 + float64(i)
		}

		Convey("When computing the stat block", func() {
			st := indicator.Compute(vals)

			Convey("Then price fields should reflect the tail", func() {
				So(st.Price, ShouldEqual, 179)
				So(st.PrevClose, ShouldEqual, 178)
			})

			Convey("And moving averages should trail the price", func() {
				So(st.SMA20, ShouldAlmostEqual, 169.5, 1e-9)
				So(st.SMA50, ShouldAlmostEqual, 154.5, 1e-9)
				So(st.VsSMA50, ShouldBeGreaterThan, 0)
			})

			Convey("And lookback returns should be positive", func() {
				So(st.Return1W, ShouldBeGreaterThan, 0)
				So(st.Return1M, ShouldBeGreaterThan, st.Return1W)
				So(st.Return3M, ShouldBeGreaterThan, st.Return1M)
			})

			Convey("And vol should be finite", func() {
				So(math.IsNaN(st.Vol20), ShouldBeFalse)
				So(st.Vol20, ShouldBeGreaterThanOrEqualTo, 0)
			})
		})

		Convey("When the series is empty", func() {
			st := indicator.Compute(nil)
			So(st.Price, ShouldEqual, 0)
			So(st.SMA50, ShouldEqual, 0)
		})
	})
}
