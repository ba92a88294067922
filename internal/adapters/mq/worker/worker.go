// Package worker defines worker contracts for asynchronous symbol refresh.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/okian/macromon/internal/domain/indicator"
	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/logger"
	"github.com/okian/macromon/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Job abstracts what workers read off the queue.
type Job = model.FetchJob

// Fetcher retrieves the raw series for a symbol.
type Fetcher interface {
	Fetch(ctx context.Context, sym model.Symbol) (model.Series, error)
}

// Classifier scores computed stats into a trend signal.
type Classifier interface {
	Classify(st model.Stats) (int, model.Signal)
}

// Sink receives finished snapshots.
type Sink interface {
	Put(ctx context.Context, snap model.Snapshot) error
}

// Archiver persists fetched series for history. Optional.
type Archiver interface {
	Append(ctx context.Context, key string, series model.Series) error
}

// Notifier announces a refreshed symbol to dashboard clients. Optional.
type Notifier interface {
	NotifyRefreshed(snap model.Snapshot)
}

// Releaser clears the in-flight mark once a job finishes.
type Releaser interface {
	Release(ctx context.Context, id string)
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Job
}

// Worker processes fetch jobs and writes snapshots using the provided
// interfaces.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing fetch jobs.
type InMemoryWorker struct {
	queue      Queue
	fetcher    Fetcher
	classifier Classifier
	sink       Sink
	archiver   Archiver
	notifier   Notifier
	releaser   Releaser
	name       string
	now        func() time.Time

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, fetcher Fetcher, classifier Classifier, sink Sink, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:      queue,
		fetcher:    fetcher,
		classifier: classifier,
		sink:       sink,
		name:       "worker",
		now:        time.Now,
		shutdown:   make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			if err := w.processJob(ctx, job); err != nil {
				w.logger.Error(ctx, "error processing fetch job", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processJob fetches one symbol, computes its stats and signal, and
// publishes the snapshot.
func (w *InMemoryWorker) processJob(ctx context.Context, job Job) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if w.releaser != nil {
		defer w.releaser.Release(ctx, job.Symbol.Key())
	}

	series, err := w.fetcher.Fetch(ctx, job.Symbol)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "fetch_error")
		w.logger.Error(ctx, "fetch failed",
			logger.String("jobID", job.JobID),
			logger.String("symbol", job.Symbol.Ticker),
			logger.Error(err),
		)
		return fmt.Errorf("fetch %s: %w", job.Symbol.Ticker, err)
	}

	stats := indicator.Compute(series.Values())
	score, sig := w.classifier.Classify(stats)

	snap := model.Snapshot{
		Symbol:    job.Symbol,
		Series:    series,
		Stats:     stats,
		Score:     score,
		Signal:    sig,
		FetchedAt: w.now(),
	}

	if err := w.sink.Put(ctx, snap); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store_error")
		return fmt.Errorf("store snapshot %s: %w", job.Symbol.Ticker, err)
	}

	if w.archiver != nil {
		if err := w.archiver.Append(ctx, job.Symbol.Key(), series); err != nil {
			// History is best effort; the live snapshot already landed.
			w.logger.Warn(ctx, "history append failed",
				logger.String("symbol", job.Symbol.Ticker),
				logger.Error(err),
			)
		}
	}

	if w.notifier != nil {
		w.notifier.NotifyRefreshed(snap)
	}

	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers []*InMemoryWorker

	shutdown chan struct{}

	logger logger.Logger
}

// NewPool creates a new worker pool. Optional collaborators set on the
// pool options apply to every worker.
func NewPool(workerCount int, queue Queue, fetcher Fetcher, classifier Classifier, sink Sink, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*InMemoryWorker, workerCount),
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		workerOpts := append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)
		pool.workers[i] = NewInMemoryWorker(queue, fetcher, classifier, sink, workerOpts...)
	}

	metrics.UpdateWorkerActiveCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		go worker.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	for _, worker := range p.workers {
		close(worker.shutdown)
	}
	for _, worker := range p.workers {
		select {
		case <-worker.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// Shutdown gracefully shuts down the entire worker pool. The queue is
// closed first so workers drain remaining jobs before stopping.
func (p *Pool) Shutdown(ctx context.Context) error {
	if len(p.workers) > 0 {
		if closer, ok := p.workers[0].queue.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				p.logger.Error(ctx, "error closing queue", logger.Error(err))
			}
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, worker := range p.workers {
		select {
		case <-worker.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}
