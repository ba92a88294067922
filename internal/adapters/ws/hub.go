// Package ws pushes refresh events to connected dashboard clients.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/logger"
	"github.com/okian/macromon/pkg/metrics"
)

// Connection timing constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 64
)

// RefreshEvent is the payload broadcast after a symbol refresh.
type RefreshEvent struct {
	Type      string  `json:"type"`
	Key       string  `json:"key"`
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"change_pct"`
	Signal    string  `json:"signal"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from the same origin; probes and local
	// tooling connect without an Origin header.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// Hub fans broadcast messages out to every connected client.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	logger logger.Logger
}

// NewHub creates a hub. Run must be called before clients connect.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.Get().Named("ws"),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run owns the client set until ctx is canceled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			metrics.UpdateWSClientCount(0)
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			metrics.UpdateWSClientCount(len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			metrics.UpdateWSClientCount(len(h.clients))
		case msg := <-h.broadcast:
			metrics.RecordWSBroadcast()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow client; drop it rather than block the hub.
					delete(h.clients, c)
					close(c.send)
				}
			}
			metrics.UpdateWSClientCount(len(h.clients))
		}
	}
}

// NotifyRefreshed broadcasts a refresh event for a snapshot.
func (h *Hub) NotifyRefreshed(snap model.Snapshot) {
	ev := RefreshEvent{
		Type:      "refresh",
		Key:       snap.Symbol.Key(),
		Ticker:    snap.Symbol.Ticker,
		Price:     snap.Stats.Price,
		ChangePct: snap.Stats.ChangePct1D(),
		Signal:    string(snap.Signal),
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return
	}

	select {
	case h.broadcast <- raw:
	default:
		// Broadcast backlog full; the next refresh will catch clients up.
	}
}

// ServeHTTP upgrades the connection and attaches a client to the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn(r.Context(), "websocket upgrade failed", logger.Error(err))
		return
	}

	c := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	h.register <- c

	go c.writePump()
	go c.readPump()
}
