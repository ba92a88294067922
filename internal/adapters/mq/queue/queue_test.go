package queue_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/adapters/mq/queue"
	"github.com/okian/macromon/internal/domain/model"
)

func job(id string) model.FetchJob {
	return model.FetchJob{
		JobID:  id,
		Symbol: model.Symbol{Ticker: "^GSPC", Kind: model.KindIndex},
	}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a bounded in-memory queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))
		ctx := context.Background()

		Convey("When jobs are enqueued within capacity", func() {
			So(q.Enqueue(ctx, job("a")), ShouldBeTrue)
			So(q.Enqueue(ctx, job("b")), ShouldBeTrue)

			Convey("Then the length reflects pending jobs", func() {
				So(q.Len(ctx), ShouldEqual, 2)
			})

			Convey("And a further enqueue is rejected", func() {
				So(q.Enqueue(ctx, job("c")), ShouldBeFalse)
			})

			Convey("And dequeue delivers jobs in order", func() {
				So(q.Close(), ShouldBeNil)
				var got []string
				for j := range q.Dequeue(ctx) {
					got = append(got, j.JobID)
				}
				So(got, ShouldResemble, []string{"a", "b"})
			})
		})

		Convey("When the queue is closed", func() {
			So(q.Close(), ShouldBeNil)

			Convey("Then it reports closed and drops new jobs", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, job("a")), ShouldBeFalse)
			})

			Convey("And closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})
		})

		Convey("When the consumer context is cancelled", func() {
			So(q.Enqueue(ctx, job("a")), ShouldBeTrue)
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			Convey("Then the dequeue channel closes promptly", func() {
				ch := q.Dequeue(cctx)
				select {
				case _, ok := <-ch:
					// Either the job raced in before cancellation or the
					// channel is already closed; both are acceptable.
					_ = ok
				case <-time.After(time.Second):
					t.Fatal("dequeue channel did not settle")
				}
			})
		})
	})
}
