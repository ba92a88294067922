package service

import (
	"time"

	"github.com/okian/macromon/internal/domain/model"
	"github.com/okian/macromon/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFREDAPIKey sets the FRED API key. An empty key enables offline mode.
func WithFREDAPIKey(key string) Option {
	return func(s *Service) {
		s.fredAPIKey = key
	}
}

// WithOffline forces generated data regardless of the API key.
func WithOffline(offline bool) Option {
	return func(s *Service) {
		s.offline = offline
	}
}

// WithWatchlist replaces the default watchlist.
func WithWatchlist(symbols []model.Symbol) Option {
	return func(s *Service) {
		if len(symbols) > 0 {
			s.watchlist = symbols
		}
	}
}

// WithRefreshInterval sets the watchlist refresh cadence.
func WithRefreshInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.refreshInterval = interval
		}
	}
}

// WithCacheTTL sets the snapshot TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithQueueSize sets the maximum size of the fetch job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithWorkerCount sets the number of fetch workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithDBPath sets the SQLite database file.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithJWTSecret sets the token signing secret.
func WithJWTSecret(secret string) Option {
	return func(s *Service) {
		s.jwtSecret = secret
	}
}

// WithTokenTTL sets the issued token lifetime.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.tokenTTL = ttl
		}
	}
}

// WithMoversLimit caps the movers and recommendation boards.
func WithMoversLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.moversLimit = n
		}
	}
}

// WithHistoryRetention sets how long series captures are kept. Zero or
// negative disables pruning.
func WithHistoryRetention(d time.Duration) Option {
	return func(s *Service) {
		s.historyRetention = d
	}
}

// WithAdminSeed sets the account created when the users table is empty.
func WithAdminSeed(user, password string) Option {
	return func(s *Service) {
		s.adminUser = user
		s.adminPassword = password
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
