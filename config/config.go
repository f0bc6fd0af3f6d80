// Package config reads settings of cut tools from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

// Config holds environment settings.
type Config struct {
	// Debug enables debug logging.
	Debug bool `env:"CUT_DEBUG, default=false"`
	// NumJobs is the default number of workers for batch operations.
	NumJobs int `env:"CUT_NUM_JOBS, default=1" validate:"gte=1"`
	// StrictJoin makes supervisions of unknown recordings an error.
	StrictJoin bool `env:"CUT_STRICT_JOIN, default=false"`
	// RandomIDs assigns random ids to cuts built from manifests.
	RandomIDs bool `env:"CUT_RANDOM_IDS, default=false"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
