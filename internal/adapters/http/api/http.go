// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/okian/macromon/internal/adapters/storage"
	"github.com/okian/macromon/internal/adapters/ws"
	service "github.com/okian/macromon/internal/app"
	"github.com/okian/macromon/internal/domain/fxrec"
	"github.com/okian/macromon/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Quotes(ctx context.Context) []service.Quote
	Series(ctx context.Context, key string) (model.Snapshot, error)
	Markets(ctx context.Context) service.MarketsView
	FXBoard(ctx context.Context) []service.Quote
	Recommendations(ctx context.Context) []fxrec.Recommendation
	YieldCurve(ctx context.Context) service.YieldView
	Movers(ctx context.Context) service.MoversView
	RefreshNow(ctx context.Context) int
	GetStats(ctx context.Context) map[string]interface{}

	Login(ctx context.Context, username, password string) (string, error)
	JWTSecret() string

	SaveReport(ctx context.Context, title, createdBy string) (storage.SavedReport, error)
	GetReport(ctx context.Context, id string) (storage.SavedReport, error)
	ListReports(ctx context.Context, limit, offset int) ([]storage.SavedReport, error)
	DeleteReport(ctx context.Context, id string) error

	WSHandler() *ws.Hub
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	deps Dependencies

	quotesHandler    *QuotesHandler
	marketsHandler   *MarketsHandler
	fxHandler        *FXHandler
	yieldHandler     *YieldHandler
	statsHandler     *StatsHandler
	authHandler      *AuthHandler
	reportsHandler   *ReportsHandler
	refreshHandler   *RefreshHandler
	healthHandler    *HealthHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		deps:             deps,
		quotesHandler:    NewQuotesHandler(deps),
		marketsHandler:   NewMarketsHandler(deps),
		fxHandler:        NewFXHandler(deps),
		yieldHandler:     NewYieldHandler(deps),
		statsHandler:     NewStatsHandler(deps),
		authHandler:      NewAuthHandler(deps),
		reportsHandler:   NewReportsHandler(deps),
		refreshHandler:   NewRefreshHandler(deps),
		healthHandler:    NewHealthHandler(),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(_ context.Context, r *mux.Router) {
	secret := s.deps.JWTSecret()

	// Probe endpoints stay unauthenticated so orchestration keeps working.
	r.HandleFunc("/_stcore/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health")).Methods(http.MethodGet)
	r.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "health")).Methods(http.MethodGet)
	r.Handle("/metrics", s.healthHandler.MetricsHandler()).Methods(http.MethodGet)

	r.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard).Methods(http.MethodGet)
	r.HandleFunc("/", s.dashboardHandler.HandleDashboard).Methods(http.MethodGet)
	r.Handle("/ws", s.deps.WSHandler())

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", MetricsMiddleware(s.authHandler.HandleLogin, "login")).Methods(http.MethodPost)

	// Read endpoints.
	api.HandleFunc("/quotes", MetricsMiddleware(s.quotesHandler.HandleGetQuotes, "quotes")).Methods(http.MethodGet)
	api.HandleFunc("/series/{key}", MetricsMiddleware(s.quotesHandler.HandleGetSeries, "series")).Methods(http.MethodGet)
	api.HandleFunc("/markets", MetricsMiddleware(s.marketsHandler.HandleGetMarkets, "markets")).Methods(http.MethodGet)
	api.HandleFunc("/movers", MetricsMiddleware(s.marketsHandler.HandleGetMovers, "movers")).Methods(http.MethodGet)
	api.HandleFunc("/fx", MetricsMiddleware(s.fxHandler.HandleGetFX, "fx")).Methods(http.MethodGet)
	api.HandleFunc("/fx/recommendations", MetricsMiddleware(s.fxHandler.HandleGetRecommendations, "fx_recommendations")).Methods(http.MethodGet)
	api.HandleFunc("/yieldcurve", MetricsMiddleware(s.yieldHandler.HandleGetYieldCurve, "yieldcurve")).Methods(http.MethodGet)
	api.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats")).Methods(http.MethodGet)

	// Authenticated endpoints.
	api.HandleFunc("/reports", MetricsMiddleware(RequireAuth(secret, s.reportsHandler.HandleListReports), "reports")).Methods(http.MethodGet)
	api.HandleFunc("/reports", MetricsMiddleware(RequireAuth(secret, s.reportsHandler.HandleSaveReport), "reports")).Methods(http.MethodPost)
	api.HandleFunc("/reports/{id}", MetricsMiddleware(RequireAuth(secret, s.reportsHandler.HandleGetReport), "report")).Methods(http.MethodGet)
	api.HandleFunc("/reports/{id}", MetricsMiddleware(RequireAdmin(secret, s.reportsHandler.HandleDeleteReport), "report")).Methods(http.MethodDelete)
	api.HandleFunc("/refresh", MetricsMiddleware(RequireAdmin(secret, s.refreshHandler.HandleRefresh), "refresh")).Methods(http.MethodPost)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
