package api

import "net/http"

// MarketsHandler serves the regional boards and movers.
type MarketsHandler struct {
	deps Dependencies
}

// NewMarketsHandler creates a new markets handler.
func NewMarketsHandler(deps Dependencies) *MarketsHandler {
	return &MarketsHandler{deps: deps}
}

// HandleGetMarkets handles GET /api/markets requests.
func (h *MarketsHandler) HandleGetMarkets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Markets(r.Context()))
}

// HandleGetMovers handles GET /api/movers requests. An optional limit query
// caps each side of the board.
func (h *MarketsHandler) HandleGetMovers(w http.ResponseWriter, r *http.Request) {
	view := h.deps.Movers(r.Context())
	if limit := queryInt(r, "limit", 0); limit > 0 {
		if limit < len(view.Gainers) {
			view.Gainers = view.Gainers[:limit]
		}
		if limit < len(view.Losers) {
			view.Losers = view.Losers[:limit]
		}
	}
	writeJSON(w, http.StatusOK, view)
}
