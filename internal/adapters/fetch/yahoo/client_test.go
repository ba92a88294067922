package yahoo_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/adapters/fetch/yahoo"
	"github.com/okian/macromon/internal/domain/model"
)

func TestChart(t *testing.T) {
	Convey("Given a chart endpoint with one null close", t, func() {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.EscapedPath()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart":{"result":[{
				"timestamp":[1735776000,1735862400,1735948800],
				"indicators":{"quote":[{"close":[5900.5,null,5923.25]}]}
			}],"error":null}}`))
		}))
		defer srv.Close()

		client := yahoo.NewClient(yahoo.WithBaseURL(srv.URL))

		Convey("When fetching candles", func() {
			candles, err := client.Chart(context.Background(), "^GSPC", "6mo", "1d")

			Convey("Then the ticker is path escaped and nulls are dropped", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/v8/finance/chart/%5EGSPC")
				So(len(candles), ShouldEqual, 2)
				So(candles[0].Close, ShouldEqual, 5900.5)
				So(candles[1].Close, ShouldEqual, 5923.25)
			})
		})

		Convey("When fetching through the provider contract", func() {
			s, err := client.Fetch(context.Background(), model.Symbol{Ticker: "^GSPC", Kind: model.KindIndex})

			Convey("Then the series mirrors the close values", func() {
				So(err, ShouldBeNil)
				So(s.ID, ShouldEqual, "^GSPC")
				So(len(s.Observations), ShouldEqual, 2)
				So(s.Observations[1].Value, ShouldEqual, 5923.25)
			})
		})
	})
}

func TestChartErrors(t *testing.T) {
	Convey("Given an upstream error payload", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
		}))
		defer srv.Close()

		client := yahoo.NewClient(yahoo.WithBaseURL(srv.URL))

		Convey("When fetching candles", func() {
			_, err := client.Chart(context.Background(), "NOPE", "6mo", "1d")

			Convey("Then the upstream status error is returned", func() {
				So(errors.Is(err, yahoo.ErrUpstreamStatus), ShouldBeTrue)
			})
		})
	})

	Convey("Given an empty result payload", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
		}))
		defer srv.Close()

		client := yahoo.NewClient(yahoo.WithBaseURL(srv.URL))

		Convey("When fetching candles", func() {
			_, err := client.Chart(context.Background(), "^GSPC", "6mo", "1d")

			Convey("Then the empty result error is returned", func() {
				So(errors.Is(err, yahoo.ErrEmptyResult), ShouldBeTrue)
			})
		})
	})
}
