// Package scheduler drives periodic watchlist refreshes.
//
// Every tick it enqueues one fetch job per watchlist symbol, skipping
// symbols that already have a job in flight. An immediate warm-up pass
// runs at start so the dashboard is populated before the first tick.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/logger"
	"github.com/okian/macromon/pkg/metrics"
)

// Default scheduler configuration constants.
const (
	defaultInterval = 15 * time.Minute
)

// Enqueuer feeds fetch jobs to the worker pool.
type Enqueuer interface {
	Enqueue(ctx context.Context, j model.FetchJob) bool
}

// Tracker guards against duplicate in-flight jobs per symbol.
type Tracker interface {
	Acquire(ctx context.Context, id string) bool
	Release(ctx context.Context, id string)
}

// Scheduler enqueues refresh jobs on a fixed interval.
type Scheduler struct {
	watchlist []model.Symbol
	enqueuer  Enqueuer
	tracker   Tracker
	interval  time.Duration
	warmUp    bool

	cron   *cron.Cron
	logger logger.Logger
}

// New creates a scheduler with configuration options.
func New(watchlist []model.Symbol, enqueuer Enqueuer, tracker Tracker, opts ...Option) *Scheduler {
	s := &Scheduler{
		watchlist: watchlist,
		enqueuer:  enqueuer,
		tracker:   tracker,
		interval:  defaultInterval,
		warmUp:    true,
		logger:    logger.Get().Named("scheduler"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start begins the refresh schedule. It returns once the cron is running;
// the warm-up pass, when enabled, has already enqueued its jobs.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.warmUp {
		s.RefreshAll(ctx)
	}

	s.cron = cron.New()
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, func() { s.RefreshAll(ctx) }); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	s.cron.Start()

	s.logger.Info(ctx, "scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("watchlist", len(s.watchlist)),
	)
	return nil
}

// Stop halts the schedule and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RefreshAll enqueues a fetch job for every watchlist symbol not already
// in flight. It returns the number of jobs enqueued.
func (s *Scheduler) RefreshAll(ctx context.Context) int {
	start := time.Now()
	enqueued := 0

	for _, sym := range s.watchlist {
		if !s.tracker.Acquire(ctx, sym.Key()) {
			continue
		}
		job := model.FetchJob{
			JobID:     uuid.NewString(),
			Symbol:    sym,
			Requested: start,
		}
		if !s.enqueuer.Enqueue(ctx, job) {
			s.tracker.Release(ctx, sym.Key())
			s.logger.Warn(ctx, "refresh job dropped", logger.String("symbol", sym.Ticker))
			continue
		}
		enqueued++
	}

	metrics.RecordRefreshRun()
	metrics.RecordRefreshDuration(float64(time.Since(start).Milliseconds()))

	s.logger.Info(ctx, "refresh pass enqueued",
		logger.Int("jobs", enqueued),
		logger.Int("watchlist", len(s.watchlist)),
	)
	return enqueued
}
