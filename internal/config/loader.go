package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default file locations.
const (
	configEnvVar  = "MACROMON_CONFIG"
	dotenvPath    = ".env"
	envPrefix     = "MACROMON_"
	fredKeyEnvVar = "FRED_API_KEY"
)

// Load builds a Config by layering defaults, optional files, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MACROMON_CONFIG is set
//  3. .env in the working directory, if present
//  4. env (prefix MACROMON_, plus bare FRED_API_KEY)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(configEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// The container contract mounts the API key as a .env file.
	if _, err := os.Stat(dotenvPath); err == nil {
		if err := k.Load(file.Provider(dotenvPath), dotenv.ParserEnv("", ".", strings.ToLower)); err != nil {
			return nil, err
		}
	}

	// Environment variables: MACROMON_ADDR, MACROMON_QUEUE_SIZE, ...
	// Map env keys like MACROMON_QUEUE_SIZE -> queue_size (flat keys).
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// The bare variable name wins so existing deployments keep working.
	if key := os.Getenv(fredKeyEnvVar); key != "" {
		cfg.FREDAPIKey = key
	}

	if cfg.Addr == "" {
		return nil, ErrEmptyAddr
	}
	if cfg.RefreshInterval <= 0 || cfg.CacheTTL <= 0 {
		return nil, ErrBadInterval
	}
	return &cfg, nil
}
