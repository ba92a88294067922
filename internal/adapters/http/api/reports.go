package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/okian/macromon/internal/adapters/storage"
	"github.com/okian/macromon/internal/auth"
)

// ReportsHandler manages saved market reports.
type ReportsHandler struct {
	deps Dependencies
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps Dependencies) *ReportsHandler {
	return &ReportsHandler{deps: deps}
}

type saveReportRequest struct {
	Title string `json:"title"`
}

// HandleListReports handles GET /api/reports requests. Pagination is driven
// by limit and offset query parameters.
func (h *ReportsHandler) HandleListReports(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	reports, err := h.deps.ListReports(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed", err)
		return
	}
	if reports == nil {
		reports = []storage.SavedReport{}
	}
	writeJSON(w, http.StatusOK, reports)
}

// HandleSaveReport handles POST /api/reports requests. The report is built
// from the current snapshot state and attributed to the caller.
func (h *ReportsHandler) HandleSaveReport(w http.ResponseWriter, r *http.Request) {
	var req saveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", ErrBadRequest)
		return
	}
	if req.Title == "" {
		req.Title = "Market Report"
	}

	createdBy := "unknown"
	if principal, ok := auth.FromContext(r.Context()); ok {
		createdBy = principal.Name
	}

	saved, err := h.deps.SaveReport(r.Context(), req.Title, createdBy)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// HandleGetReport handles GET /api/reports/{id} requests.
func (h *ReportsHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_id", ErrMissingKey)
		return
	}

	report, err := h.deps.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "get_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleDeleteReport handles DELETE /api/reports/{id} requests.
func (h *ReportsHandler) HandleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_id", ErrMissingKey)
		return
	}

	if err := h.deps.DeleteReport(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
