package api

import "net/http"

// YieldHandler serves the treasury curve view.
type YieldHandler struct {
	deps Dependencies
}

// NewYieldHandler creates a new yield handler.
func NewYieldHandler(deps Dependencies) *YieldHandler {
	return &YieldHandler{deps: deps}
}

// HandleGetYieldCurve handles GET /api/yieldcurve requests.
func (h *YieldHandler) HandleGetYieldCurve(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.YieldCurve(r.Context()))
}
