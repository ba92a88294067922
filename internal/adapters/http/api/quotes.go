package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/okian/macromon/internal/adapters/repository"
)

// QuotesHandler serves the quote board and per-symbol series.
type QuotesHandler struct {
	deps Dependencies
}

// NewQuotesHandler creates a new quotes handler.
func NewQuotesHandler(deps Dependencies) *QuotesHandler {
	return &QuotesHandler{deps: deps}
}

// HandleGetQuotes handles GET /api/quotes requests.
func (h *QuotesHandler) HandleGetQuotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Quotes(r.Context()))
}

// HandleGetSeries handles GET /api/series/{key} requests. The key is the
// kind-qualified symbol key, e.g. "index:^GSPC" or "fred:DGS10".
func (h *QuotesHandler) HandleGetSeries(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingKey)
		return
	}

	snap, err := h.deps.Series(r.Context(), key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	// An optional window query keeps only the trailing N observations.
	if window := queryInt(r, "window", 0); window > 0 && window < len(snap.Series.Observations) {
		snap.Series.Observations = snap.Series.Observations[len(snap.Series.Observations)-window:]
	}

	writeJSON(w, http.StatusOK, snap)
}
