// Package worker defines worker contracts for asynchronous symbol refresh.
package worker

import (
	"time"

	"github.com/okian/macromon/pkg/logger"
)

// Option applies a configuration option to the InMemoryWorker.
type Option func(*InMemoryWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *InMemoryWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(logger logger.Logger) Option {
	return func(w *InMemoryWorker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithArchiver sets the optional history archiver.
func WithArchiver(a Archiver) Option {
	return func(w *InMemoryWorker) {
		w.archiver = a
	}
}

// WithNotifier sets the optional refresh notifier.
func WithNotifier(n Notifier) Option {
	return func(w *InMemoryWorker) {
		w.notifier = n
	}
}

// WithReleaser sets the in-flight releaser.
func WithReleaser(r Releaser) Option {
	return func(w *InMemoryWorker) {
		w.releaser = r
	}
}

// WithClock sets the time source used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(w *InMemoryWorker) {
		if now != nil {
			w.now = now
		}
	}
}
