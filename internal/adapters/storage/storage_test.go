package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/adapters/storage"
	"github.com/okian/macromon/internal/domain/model"
)

func TestHistoryRepo(t *testing.T) {
	Convey("Given an in-memory database", t, func() {
		db, err := storage.Open(":memory:")
		So(err, ShouldBeNil)
		defer db.Close()

		repo := storage.NewHistoryRepo(db)
		ctx := context.Background()

		series := model.Series{
			ID: "DGS10",
			Observations: []model.Observation{
				{TS: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), Value: 4.41},
				{TS: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), Value: 4.38},
			},
		}

		Convey("When a series is appended", func() {
			So(repo.Append(ctx, "fred:DGS10", series), ShouldBeNil)

			Convey("Then the latest capture round-trips", func() {
				got, err := repo.Latest(ctx, "fred:DGS10")
				So(err, ShouldBeNil)
				So(got.ID, ShouldEqual, "DGS10")
				So(len(got.Observations), ShouldEqual, 2)
				So(got.Observations[1].Value, ShouldEqual, 4.38)
			})

			Convey("And capture times are recorded", func() {
				times, err := repo.Captures(ctx, "fred:DGS10", 10)
				So(err, ShouldBeNil)
				So(len(times), ShouldEqual, 1)
			})
		})

		Convey("When the key has no captures", func() {
			_, err := repo.Latest(ctx, "fred:MISSING")

			Convey("Then not found is reported", func() {
				So(errors.Is(err, storage.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When old captures are pruned", func() {
			So(repo.Append(ctx, "fred:DGS10", series), ShouldBeNil)
			n, err := repo.Prune(ctx, time.Now().Add(time.Hour))

			Convey("Then the rows are removed", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 1)
				_, err := repo.Latest(ctx, "fred:DGS10")
				So(errors.Is(err, storage.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestReportRepo(t *testing.T) {
	Convey("Given an in-memory database", t, func() {
		db, err := storage.Open(":memory:")
		So(err, ShouldBeNil)
		defer db.Close()

		repo := storage.NewReportRepo(db)
		ctx := context.Background()
		payload := json.RawMessage(`{"title":"FX overview","charts":[]}`)

		Convey("When a report is saved", func() {
			rep, err := repo.Save(ctx, "fx-overview", "admin", payload)
			So(err, ShouldBeNil)
			So(rep.ID, ShouldNotBeEmpty)

			Convey("Then it can be fetched with its payload", func() {
				got, err := repo.Get(ctx, rep.ID)
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, "fx-overview")
				So(string(got.Payload), ShouldEqual, string(payload))
			})

			Convey("And listing returns headers without payloads", func() {
				list, err := repo.List(ctx, 10, 0)
				So(err, ShouldBeNil)
				So(len(list), ShouldEqual, 1)
				So(list[0].Payload, ShouldBeNil)
			})

			Convey("And it can be deleted once", func() {
				So(repo.Delete(ctx, rep.ID), ShouldBeNil)
				So(errors.Is(repo.Delete(ctx, rep.ID), storage.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestUserRepo(t *testing.T) {
	Convey("Given an in-memory database", t, func() {
		db, err := storage.Open(":memory:")
		So(err, ShouldBeNil)
		defer db.Close()

		repo := storage.NewUserRepo(db)
		ctx := context.Background()

		Convey("When a user is created", func() {
			u, err := repo.Create(ctx, "alice", "s3cret", storage.RoleAdmin)
			So(err, ShouldBeNil)
			So(u.Role, ShouldEqual, storage.RoleAdmin)

			Convey("Then the right password authenticates", func() {
				got, err := repo.Authenticate(ctx, "alice", "s3cret")
				So(err, ShouldBeNil)
				So(got.Username, ShouldEqual, "alice")
			})

			Convey("And the wrong password is rejected", func() {
				_, err := repo.Authenticate(ctx, "alice", "nope")
				So(errors.Is(err, storage.ErrBadCredentials), ShouldBeTrue)
			})

			Convey("And duplicate usernames are rejected", func() {
				_, err := repo.Create(ctx, "alice", "other", storage.RoleViewer)
				So(errors.Is(err, storage.ErrUserExists), ShouldBeTrue)
			})
		})

		Convey("When an unknown role is supplied", func() {
			u, err := repo.Create(ctx, "bob", "pw", "superuser")

			Convey("Then it defaults to viewer", func() {
				So(err, ShouldBeNil)
				So(u.Role, ShouldEqual, storage.RoleViewer)
			})
		})
	})
}
