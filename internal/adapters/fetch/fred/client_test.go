package fred_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/adapters/fetch/fred"
	"github.com/okian/macromon/internal/domain/model"
)

func TestObservations(t *testing.T) {
	Convey("Given a FRED observations endpoint", t, func() {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"series_id":         r.URL.Query().Get("series_id"),
				"api_key":           r.URL.Query().Get("api_key"),
				"file_type":         r.URL.Query().Get("file_type"),
				"observation_start": r.URL.Query().Get("observation_start"),
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"observations":[
				{"date":"2025-01-02","value":"4.57"},
				{"date":"2025-01-03","value":"."},
				{"date":"2025-01-06","value":"4.61"},
				{"date":"2025-01-07","value":"bogus"}
			]}`))
		}))
		defer srv.Close()

		client := fred.NewClient("test-key", fred.WithBaseURL(srv.URL))

		Convey("When fetching a series", func() {
			start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			s, err := client.Observations(context.Background(), "DGS10", start)

			Convey("Then the request carries the expected query parameters", func() {
				So(err, ShouldBeNil)
				So(gotQuery["series_id"], ShouldEqual, "DGS10")
				So(gotQuery["api_key"], ShouldEqual, "test-key")
				So(gotQuery["file_type"], ShouldEqual, "json")
				So(gotQuery["observation_start"], ShouldEqual, "2025-01-01")
			})

			Convey("And missing or malformed observations are skipped", func() {
				So(err, ShouldBeNil)
				So(len(s.Observations), ShouldEqual, 2)
				So(s.Observations[0].Value, ShouldEqual, 4.57)
				So(s.Observations[1].Value, ShouldEqual, 4.61)
			})
		})
	})
}

func TestObservationsErrors(t *testing.T) {
	Convey("Given a client without an API key", t, func() {
		client := fred.NewClient("")

		Convey("When fetching", func() {
			_, err := client.Fetch(context.Background(), model.Symbol{Ticker: "DGS10", Kind: model.KindFRED})

			Convey("Then the missing key error is returned", func() {
				So(errors.Is(err, fred.ErrMissingAPIKey), ShouldBeTrue)
			})
		})
	})

	Convey("Given an upstream returning an error status", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := fred.NewClient("test-key", fred.WithBaseURL(srv.URL))

		Convey("When fetching", func() {
			_, err := client.Observations(context.Background(), "DGS10", time.Now())

			Convey("Then the upstream status error is returned", func() {
				So(errors.Is(err, fred.ErrUpstreamStatus), ShouldBeTrue)
			})
		})
	})
}
