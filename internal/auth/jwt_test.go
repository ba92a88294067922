package auth_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/auth"
)

const testSecret = "unit-test-secret"

func TestIssueAndParse(t *testing.T) {
	Convey("Given an issued admin token", t, func() {
		tok, err := auth.Issue(testSecret, "alice", "Admin", time.Hour)
		So(err, ShouldBeNil)
		So(tok, ShouldNotBeEmpty)

		Convey("When parsed with the right secret", func() {
			p, err := auth.Parse(tok, testSecret)

			Convey("Then the principal round-trips with a lowered role", func() {
				So(err, ShouldBeNil)
				So(p.Name, ShouldEqual, "alice")
				So(p.Role, ShouldEqual, "admin")
				So(p.IsAdmin(), ShouldBeTrue)
			})
		})

		Convey("When parsed with the wrong secret", func() {
			_, err := auth.Parse(tok, "other-secret")

			Convey("Then validation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given an expired token", t, func() {
		tok, err := auth.Issue(testSecret, "bob", "viewer", -time.Minute)
		So(err, ShouldBeNil)

		Convey("When parsed", func() {
			_, err := auth.Parse(tok, testSecret)

			Convey("Then validation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given an empty secret", t, func() {
		Convey("Then issuing is rejected", func() {
			_, err := auth.Issue("", "alice", "admin", time.Hour)
			So(errors.Is(err, auth.ErrEmptySecret), ShouldBeTrue)
		})
	})
}

func TestParseFromRequest(t *testing.T) {
	Convey("Given requests with varying Authorization headers", t, func() {
		tok, err := auth.Issue(testSecret, "alice", "viewer", time.Hour)
		So(err, ShouldBeNil)

		Convey("When the header carries a valid bearer token", func() {
			r := httptest.NewRequest("GET", "/api/quotes", nil)
			r.Header.Set("Authorization", "Bearer "+tok)
			p, err := auth.ParseFromRequest(r, testSecret)

			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "alice")
		})

		Convey("When the header is missing", func() {
			r := httptest.NewRequest("GET", "/api/quotes", nil)
			_, err := auth.ParseFromRequest(r, testSecret)

			So(errors.Is(err, auth.ErrMissingToken), ShouldBeTrue)
		})

		Convey("When the scheme is not Bearer", func() {
			r := httptest.NewRequest("GET", "/api/quotes", nil)
			r.Header.Set("Authorization", "Basic abc123")
			_, err := auth.ParseFromRequest(r, testSecret)

			So(errors.Is(err, auth.ErrInvalidHeader), ShouldBeTrue)
		})
	})
}
