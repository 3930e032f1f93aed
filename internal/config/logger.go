package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger: human-readable in local mode, JSON
// elsewhere.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsLocal() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.With(zap.String("env", cfg.Env)), nil
}
