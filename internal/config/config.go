// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage backend selectors.
const (
	BackendMemory  = "memory"
	BackendSpanner = "spanner"
)

// Config is the full service configuration.
type Config struct {
	Env         string `env:"APP_ENV" env-default:"local"`
	HTTPPort    string `env:"HTTP_PORT" env-default:"8080"`
	MetricsPort string `env:"METRICS_PORT" env-default:"9091"`

	// StorageBackend selects "memory" (seeded, ephemeral) or "spanner".
	StorageBackend string `env:"STORAGE_BACKEND" env-default:"memory"`

	// SpannerDatabase is the fully qualified database path, only read when
	// the spanner backend is selected.
	SpannerDatabase string `env:"SPANNER_DATABASE" env-default:"projects/local-project/instances/local-instance/databases/storefront-db"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if cfg.StorageBackend != BackendMemory && cfg.StorageBackend != BackendSpanner {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	return &cfg, nil
}

// IsLocal reports whether the service runs in local development mode.
func (c *Config) IsLocal() bool {
	return c.Env == "local"
}
