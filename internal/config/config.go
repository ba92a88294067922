// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - Provide New() to build a Config with defaults.
//   - Load layers defaults, an optional YAML file, a .env file and
//     environment variables.
package config

import (
	"runtime"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address. The default matches the
	// port the container contract exposes.
	Addr string `koanf:"addr"`

	// FREDAPIKey authenticates requests to the FRED observations API.
	// When empty the service runs on generated offline data.
	FREDAPIKey string `koanf:"fred_api_key"`

	// Offline forces generated data even when an API key is present.
	Offline bool `koanf:"offline"`

	// RefreshInterval is the watchlist refresh cadence.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// CacheTTL bounds how long a snapshot stays servable.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// QueueSize bounds the in-memory fetch job queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of fetch workers.
	WorkerCount int `koanf:"worker_count"`

	// DBPath is the SQLite database file. ":memory:" is accepted.
	DBPath string `koanf:"db_path"`

	// JWTSecret signs API tokens. Auth endpoints refuse to operate
	// without it.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL is the issued token lifetime.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// HistoryRetention bounds how long series captures are kept.
	HistoryRetention time.Duration `koanf:"history_retention"`

	// MoversLimit caps the rows in each movers board.
	MoversLimit int `koanf:"movers_limit"`

	// AdminUser and AdminPassword seed the first admin account when the
	// users table is empty.
	AdminUser     string `koanf:"admin_user"`
	AdminPassword string `koanf:"admin_password"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8501",
		RefreshInterval:  15 * time.Minute,
		CacheTTL:         15 * time.Minute,
		QueueSize:        1024,
		WorkerCount:      runtime.NumCPU() * 2,
		DBPath:           "macromon.db",
		TokenTTL:         12 * time.Hour,
		HistoryRetention: 90 * 24 * time.Hour,
		MoversLimit:      5,
		AdminUser:        "admin",
	}
}
