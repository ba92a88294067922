package api

import (
	"net/http"

	"github.com/okian/macromon/internal/domain/fxrec"
)

// FXHandler serves the FX board and trade ideas.
type FXHandler struct {
	deps Dependencies
}

// NewFXHandler creates a new FX handler.
func NewFXHandler(deps Dependencies) *FXHandler {
	return &FXHandler{deps: deps}
}

// HandleGetFX handles GET /api/fx requests.
func (h *FXHandler) HandleGetFX(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.FXBoard(r.Context()))
}

// HandleGetRecommendations handles GET /api/fx/recommendations requests.
// An optional limit query caps the number of ideas.
func (h *FXHandler) HandleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	recs := h.deps.Recommendations(r.Context())
	if recs == nil {
		// An empty board serializes as [] rather than null.
		recs = []fxrec.Recommendation{}
	}
	if limit := queryInt(r, "limit", 0); limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}
	writeJSON(w, http.StatusOK, recs)
}
