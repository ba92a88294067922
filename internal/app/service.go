// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/okian/macromon/internal/adapters/fetch/fred"
	"github.com/okian/macromon/internal/adapters/fetch/synthetic"
	"github.com/okian/macromon/internal/adapters/fetch/yahoo"
	jobqueue "github.com/okian/macromon/internal/adapters/mq/queue"
	workerpool "github.com/okian/macromon/internal/adapters/mq/worker"
	"github.com/okian/macromon/internal/adapters/repository"
	"github.com/okian/macromon/internal/adapters/storage"
	"github.com/okian/macromon/internal/adapters/ws"
	"github.com/okian/macromon/internal/auth"
	"github.com/okian/macromon/internal/domain/fxrec"
	"github.com/okian/macromon/internal/domain/inflight"
	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/internal/domain/signal"
	"github.com/okian/macromon/internal/domain/yield"
	"github.com/okian/macromon/internal/report"
	"github.com/okian/macromon/internal/scheduler"
	"github.com/okian/macromon/pkg/logger"
	"github.com/okian/macromon/pkg/metrics"
)

// Quote is the board row served by the quotes endpoint.
type Quote struct {
	Key       string       `json:"key"`
	Name      string       `json:"name"`
	Ticker    string       `json:"ticker"`
	Kind      model.Kind   `json:"kind"`
	Region    string       `json:"region,omitempty"`
	Price     float64      `json:"price"`
	Change1D  float64      `json:"change_1d"`
	ChangePct float64      `json:"change_pct_1d"`
	Return1M  float64      `json:"return_1m"`
	Vol20     float64      `json:"vol_20d"`
	Score     int          `json:"score"`
	Signal    model.Signal `json:"signal"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// RegionBoard groups index quotes under their regional signal.
type RegionBoard struct {
	Region string       `json:"region"`
	Signal model.Signal `json:"signal"`
	Quotes []Quote      `json:"quotes"`
}

// MarketsView is the full markets board.
type MarketsView struct {
	Overall model.Signal  `json:"overall"`
	Regions []RegionBoard `json:"regions"`
}

// MoversView pairs the gainer and loser boards.
type MoversView struct {
	Gainers []repository.Mover `json:"gainers"`
	Losers  []repository.Mover `json:"losers"`
}

// YieldView is the curve plus its headline rate readings.
type YieldView struct {
	Curve       yield.Curve `json:"curve"`
	Spread2s10  float64     `json:"spread_2s10s"`
	RealYield10 float64     `json:"real_yield_10y"`
	Breakeven10 float64     `json:"breakeven_10y"`
}

// routingFetcher dispatches fetches by symbol kind.
type routingFetcher struct {
	fredClient  workerpool.Fetcher
	yahooClient workerpool.Fetcher
}

func (r *routingFetcher) Fetch(ctx context.Context, sym model.Symbol) (model.Series, error) {
	if sym.Kind == model.KindFRED {
		return r.fredClient.Fetch(ctx, sym)
	}
	return r.yahooClient.Fetch(ctx, sym)
}

// Service implements the API dependencies for the dashboard.
type Service struct {
	store      repository.Store
	tracker    inflight.Tracker
	queue      jobqueue.Queue
	pool       *workerpool.Pool
	sched      *scheduler.Scheduler
	classifier *signal.Classifier
	fxEngine   *fxrec.Engine
	hub        *ws.Hub

	db      *sql.DB
	history *storage.HistoryRepo
	reports *storage.ReportRepo
	users   *storage.UserRepo

	watchlist []model.Symbol

	// Configuration
	fredAPIKey       string
	offline          bool
	refreshInterval  time.Duration
	cacheTTL         time.Duration
	queueSize        int
	workerCount      int
	dbPath           string
	jwtSecret        string
	tokenTTL         time.Duration
	moversLimit      int
	historyRetention time.Duration
	adminUser        string
	adminPassword    string

	started   bool
	stopPrune context.CancelFunc
	logger    logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		watchlist:        model.DefaultWatchlist(),
		refreshInterval:  15 * time.Minute,
		cacheTTL:         15 * time.Minute,
		queueSize:        1024,
		workerCount:      4,
		dbPath:           "macromon.db",
		tokenTTL:         12 * time.Hour,
		moversLimit:      5,
		historyRetention: 90 * 24 * time.Hour,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting dashboard service...")

	db, err := storage.Open(s.dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	s.db = db
	s.history = storage.NewHistoryRepo(db)
	s.reports = storage.NewReportRepo(db)
	s.users = storage.NewUserRepo(db)

	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	s.store = repository.NewMemStore(repository.WithTTL(s.cacheTTL))
	s.tracker = inflight.NewInMemoryTracker()
	s.queue = jobqueue.NewInMemoryQueue(jobqueue.WithCapacity(s.queueSize))
	s.classifier = signal.NewClassifier()
	s.fxEngine = fxrec.NewEngine(fxrec.WithMaxIdeas(s.moversLimit))

	s.hub = ws.NewHub()
	go s.hub.Run(ctx)

	fetcher := s.buildFetcher()
	s.pool = workerpool.NewPool(s.workerCount, s.queue, fetcher, s.classifier, s.store,
		workerpool.WithArchiver(s.history),
		workerpool.WithNotifier(s.hub),
		workerpool.WithReleaser(s.tracker),
	)
	s.pool.Start(ctx)

	s.sched = scheduler.New(s.watchlist, s.queue, s.tracker,
		scheduler.WithInterval(s.refreshInterval),
	)
	if err := s.sched.Start(ctx); err != nil {
		return err
	}

	pruneCtx, cancel := context.WithCancel(context.Background())
	s.stopPrune = cancel
	go s.pruneLoop(pruneCtx)

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("workers", s.workerCount),
		logger.Int("watchlist", len(s.watchlist)),
		logger.Bool("offline", s.offlineMode()),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping dashboard service...")

	if s.stopPrune != nil {
		s.stopPrune()
	}
	if s.sched != nil {
		s.sched.Stop()
	}
	if s.pool != nil {
		_ = s.pool.Shutdown(ctx)
	}
	if ms, ok := s.store.(*repository.MemStore); ok {
		ms.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}

	s.started = false
	s.logger.Info(ctx, "dashboard service stopped")
}

// pruneLoop drops history rows older than the retention window once a day.
func (s *Service) pruneLoop(ctx context.Context) {
	if s.historyRetention <= 0 {
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.history.Prune(ctx, time.Now().Add(-s.historyRetention))
			if err != nil {
				s.logger.Warn(ctx, "history prune failed", logger.Error(err))
				continue
			}
			if removed > 0 {
				s.logger.Info(ctx, "pruned history captures", logger.Int("removed", int(removed)))
			}
		}
	}
}

func (s *Service) offlineMode() bool {
	return s.offline || s.fredAPIKey == ""
}

func (s *Service) buildFetcher() workerpool.Fetcher {
	if s.offlineMode() {
		s.logger.Info(context.Background(), "no FRED api key configured, serving generated data")
		return synthetic.NewProvider()
	}
	return &routingFetcher{
		fredClient:  fred.NewClient(s.fredAPIKey),
		yahooClient: yahoo.NewClient(),
	}
}

// seedAdmin creates the first admin account when the users table is empty.
func (s *Service) seedAdmin(ctx context.Context) error {
	if s.adminUser == "" || s.adminPassword == "" {
		return nil
	}
	n, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := s.users.Create(ctx, s.adminUser, s.adminPassword, storage.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	s.logger.Info(ctx, "seeded admin account", logger.String("user", s.adminUser))
	return nil
}

func toQuote(snap model.Snapshot) Quote {
	return Quote{
		Key:       snap.Symbol.Key(),
		Name:      snap.Symbol.Name,
		Ticker:    snap.Symbol.Ticker,
		Kind:      snap.Symbol.Kind,
		Region:    snap.Symbol.Region,
		Price:     snap.Stats.Price,
		Change1D:  snap.Stats.Change1D(),
		ChangePct: snap.Stats.ChangePct1D(),
		Return1M:  snap.Stats.Return1M,
		Vol20:     snap.Stats.Vol20,
		Score:     snap.Score,
		Signal:    snap.Signal,
		FetchedAt: snap.FetchedAt,
	}
}

// Quotes returns every live quote.
func (s *Service) Quotes(ctx context.Context) []Quote {
	snaps := s.store.All(ctx)
	out := make([]Quote, len(snaps))
	for i, snap := range snaps {
		out[i] = toQuote(snap)
	}
	return out
}

// Series returns the full snapshot for one symbol key.
func (s *Service) Series(ctx context.Context, key string) (model.Snapshot, error) {
	return s.store.Get(ctx, key)
}

// Markets returns the regional index boards with aggregate signals.
func (s *Service) Markets(ctx context.Context) MarketsView {
	indices := s.store.ByKind(ctx, model.KindIndex)

	regions := []string{model.RegionUS, model.RegionEurope, model.RegionAsia}
	view := MarketsView{}
	var allSignals []model.Signal

	for _, region := range regions {
		board := RegionBoard{Region: region}
		var signals []model.Signal
		for _, snap := range indices {
			if snap.Symbol.Region != region {
				continue
			}
			board.Quotes = append(board.Quotes, toQuote(snap))
			signals = append(signals, snap.Signal)
		}
		board.Signal = signal.Aggregate(signals)
		allSignals = append(allSignals, signals...)
		view.Regions = append(view.Regions, board)
	}

	view.Overall = signal.Aggregate(allSignals)
	return view
}

// FXBoard returns the FX pair quotes.
func (s *Service) FXBoard(ctx context.Context) []Quote {
	snaps := s.store.ByKind(ctx, model.KindFX)
	out := make([]Quote, len(snaps))
	for i, snap := range snaps {
		out[i] = toQuote(snap)
	}
	return out
}

// Recommendations returns the current FX trade ideas.
func (s *Service) Recommendations(ctx context.Context) []fxrec.Recommendation {
	recs := s.fxEngine.Generate(s.store.ByKind(ctx, model.KindFX))
	metrics.UpdateRecommendationCount(len(recs))
	return recs
}

// YieldCurve returns the treasury curve built from FRED snapshots.
func (s *Service) YieldCurve(ctx context.Context) YieldView {
	lookup := func(seriesID string) (model.Series, bool) {
		snap, err := s.store.Get(ctx, model.Symbol{Ticker: seriesID, Kind: model.KindFRED}.Key())
		if err != nil {
			return model.Series{}, false
		}
		return snap.Series, true
	}

	view := YieldView{Curve: yield.Build(lookup)}
	if spread, ok := yield.Spread2s10s(lookup); ok {
		if last, ok := spread.Last(); ok {
			view.Spread2s10 = last.Value
		}
	}
	if real, ok := yield.RealYield10(lookup); ok {
		if last, ok := real.Last(); ok {
			view.RealYield10 = last.Value
		}
	}
	if be, ok := yield.Breakeven10(lookup); ok {
		if last, ok := be.Last(); ok {
			view.Breakeven10 = last.Value
		}
	}
	return view
}

// Movers returns the largest one-day moves in both directions.
func (s *Service) Movers(ctx context.Context) MoversView {
	gainers, losers := s.store.TopMovers(ctx, s.moversLimit)
	return MoversView{Gainers: gainers, Losers: losers}
}

// RefreshNow enqueues an immediate refresh pass and returns the number
// of jobs accepted.
func (s *Service) RefreshNow(ctx context.Context) int {
	return s.sched.RefreshAll(ctx)
}

// Login authenticates a user and issues a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if s.jwtSecret == "" {
		return "", auth.ErrEmptySecret
	}
	u, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return auth.Issue(s.jwtSecret, u.Username, u.Role, s.tokenTTL)
}

// JWTSecret exposes the signing secret for the API middleware.
func (s *Service) JWTSecret() string {
	return s.jwtSecret
}

// WSHandler exposes the websocket hub for the API router.
func (s *Service) WSHandler() *ws.Hub {
	return s.hub
}

// BuildReport assembles a full report document from the current state.
func (s *Service) BuildReport(ctx context.Context, title string) report.Document {
	doc := report.Document{
		Title:       title,
		GeneratedAt: time.Now().UTC(),
	}

	doc.Charts = append(doc.Charts, report.YieldCurveChart(s.YieldCurve(ctx).Curve))

	markets := s.Markets(ctx)
	for _, board := range markets.Regions {
		var snaps []model.Snapshot
		for _, q := range board.Quotes {
			if snap, err := s.store.Get(ctx, q.Key); err == nil {
				snaps = append(snaps, snap)
			}
		}
		doc.Tables = append(doc.Tables, report.MarketTable(board.Region+" Markets", snaps))
	}

	doc.Tables = append(doc.Tables, report.RecommendationTable(s.Recommendations(ctx)))
	return doc
}

// SaveReport builds and persists a report.
func (s *Service) SaveReport(ctx context.Context, title, createdBy string) (storage.SavedReport, error) {
	doc := s.BuildReport(ctx, title)
	payload, err := json.Marshal(doc)
	if err != nil {
		return storage.SavedReport{}, fmt.Errorf("encode report: %w", err)
	}
	return s.reports.Save(ctx, title, createdBy, payload)
}

// GetReport returns one saved report.
func (s *Service) GetReport(ctx context.Context, id string) (storage.SavedReport, error) {
	return s.reports.Get(ctx, id)
}

// ListReports returns saved report headers.
func (s *Service) ListReports(ctx context.Context, limit, offset int) ([]storage.SavedReport, error) {
	return s.reports.List(ctx, limit, offset)
}

// DeleteReport removes a saved report.
func (s *Service) DeleteReport(ctx context.Context, id string) error {
	return s.reports.Delete(ctx, id)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	stats := map[string]interface{}{
		"started":          s.started,
		"worker_count":     s.workerCount,
		"queue_size":       s.queueSize,
		"watchlist_size":   len(s.watchlist),
		"refresh_interval": s.refreshInterval.String(),
		"offline":          s.offlineMode(),
	}

	if s.started {
		stats["queue_length"] = s.queue.Len(ctx)
		stats["snapshots"] = s.store.Count(ctx)
		stats["in_flight"] = s.tracker.Size()
		stats["snapshot_max_age_s"] = s.store.MaxAge(ctx)

		metrics.UpdateSnapshotMaxAge(time.Duration(s.store.MaxAge(ctx) * float64(time.Second)))
		metrics.UpdateStaleSymbolCount(len(s.watchlist) - s.store.Count(ctx))
	}

	return stats
}
