package scheduler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/domain/inflight"
	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/internal/scheduler"
	"github.com/okian/macromon/pkg/logger"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

type captureEnqueuer struct {
	mu     sync.Mutex
	jobs   []model.FetchJob
	reject bool
}

func (e *captureEnqueuer) Enqueue(_ context.Context, j model.FetchJob) bool {
	if e.reject {
		return false
	}
	e.mu.Lock()
	e.jobs = append(e.jobs, j)
	e.mu.Unlock()
	return true
}

func TestRefreshAll(t *testing.T) {
	watchlist := []model.Symbol{
		{Name: "S&P 500", Ticker: "^GSPC", Kind: model.KindIndex},
		{Name: "EUR/USD", Ticker: "EURUSD=X", Kind: model.KindFX},
	}

	Convey("Given a scheduler over a two-symbol watchlist", t, func() {
		enq := &captureEnqueuer{}
		tracker := inflight.NewInMemoryTracker()
		s := scheduler.New(watchlist, enq, tracker,
			scheduler.WithInterval(time.Hour),
			scheduler.WithWarmUp(false),
		)
		ctx := context.Background()

		Convey("When a refresh pass runs", func() {
			n := s.RefreshAll(ctx)

			Convey("Then every symbol gets a job with a unique id", func() {
				So(n, ShouldEqual, 2)
				So(len(enq.jobs), ShouldEqual, 2)
				So(enq.jobs[0].JobID, ShouldNotEqual, enq.jobs[1].JobID)
			})

			Convey("And a second pass is deduplicated while jobs are in flight", func() {
				So(s.RefreshAll(ctx), ShouldEqual, 0)
			})

			Convey("And released symbols are picked up again", func() {
				tracker.Release(ctx, "index:^GSPC")
				So(s.RefreshAll(ctx), ShouldEqual, 1)
			})
		})

		Convey("When the queue rejects jobs", func() {
			enq.reject = true
			So(s.RefreshAll(ctx), ShouldEqual, 0)

			Convey("Then the in-flight marks are rolled back", func() {
				enq.reject = false
				So(s.RefreshAll(ctx), ShouldEqual, 2)
			})
		})
	})
}
