package ws_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/macromon/internal/adapters/ws"
	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/logger"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestHubBroadcast(t *testing.T) {
	Convey("Given a running hub with one connected client", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hub := ws.NewHub()
		go hub.Run(ctx)

		srv := httptest.NewServer(hub)
		defer srv.Close()

		wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		So(err, ShouldBeNil)
		defer conn.Close()

		// Give the register message time to land before broadcasting.
		time.Sleep(50 * time.Millisecond)

		Convey("When a snapshot refresh is announced", func() {
			hub.NotifyRefreshed(model.Snapshot{
				Symbol: model.Symbol{Name: "S&P 500", Ticker: "^GSPC", Kind: model.KindIndex},
				Stats:  model.Stats{Price: 5900, PrevClose: 5850},
				Signal: model.SignalBull,
			})

			Convey("Then the client receives the refresh event", func() {
				So(conn.SetReadDeadline(time.Now().Add(2*time.Second)), ShouldBeNil)
				_, raw, err := conn.ReadMessage()
				So(err, ShouldBeNil)

				var ev ws.RefreshEvent
				So(json.Unmarshal(raw, &ev), ShouldBeNil)
				So(ev.Type, ShouldEqual, "refresh")
				So(ev.Key, ShouldEqual, "index:^GSPC")
				So(ev.Price, ShouldEqual, 5900.0)
				So(ev.Signal, ShouldEqual, string(model.SignalBull))
			})
		})
	})
}
