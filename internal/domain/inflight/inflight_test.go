package inflight_test

import (
	"context"
	"sync"
	"testing"

	"github.com/okian/macromon/internal/domain/inflight"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTracker(t *testing.T) {
	Convey("Given a new tracker", t, func() {
		ctx := context.Background()
		tr := inflight.NewInMemoryTracker(inflight.WithCapacityHint(44))

		Convey("When acquiring a fresh id", func() {
			ok := tr.Acquire(ctx, "index:^GSPC")

			Convey("Then the acquisition succeeds and is counted", func() {
				So(ok, ShouldBeTrue)
				So(tr.Size(), ShouldEqual, 1)
			})

			Convey("And a second acquisition of the same id fails", func() {
				So(tr.Acquire(ctx, "index:^GSPC"), ShouldBeFalse)
				So(tr.Size(), ShouldEqual, 1)
			})

			Convey("And releasing makes it acquirable again", func() {
				tr.Release(ctx, "index:^GSPC")
				So(tr.Size(), ShouldEqual, 0)
				So(tr.Acquire(ctx, "index:^GSPC"), ShouldBeTrue)
			})
		})

		Convey("When releasing an id that was never acquired", func() {
			tr.Release(ctx, "fred:DGS10")

			Convey("Then nothing breaks", func() {
				So(tr.Size(), ShouldEqual, 0)
			})
		})

		Convey("When many goroutines race for the same id", func() {
			const goroutines = 64
			var acquired int64
			var mu sync.Mutex
			var wg sync.WaitGroup

			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if tr.Acquire(ctx, "fx:EURUSD=X") {
						mu.Lock()
						acquired++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			Convey("Then exactly one wins", func() {
				So(acquired, ShouldEqual, 1)
				So(tr.Size(), ShouldEqual, 1)
			})
		})
	})
}
