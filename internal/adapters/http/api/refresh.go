package api

import "net/http"

// RefreshHandler triggers an immediate watchlist refresh.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

type refreshResponse struct {
	Enqueued int `json:"enqueued"`
}

// HandleRefresh handles POST /api/refresh requests.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	n := h.deps.RefreshNow(r.Context())
	writeJSON(w, http.StatusAccepted, refreshResponse{Enqueued: n})
}
