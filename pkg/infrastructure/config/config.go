package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the engine's environment configuration. Everything has a
// default so the CLI works out of the box with in-memory stores.
type Config struct {
	// RedisAddr enables the redis-backed assignment store when non-empty
	RedisAddr     string `env:"SKUWATCH_REDIS_ADDR" env-default:""`
	RedisPassword string `env:"SKUWATCH_REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"SKUWATCH_REDIS_DB" env-default:"0"`

	// CommitDelay is the inter-commit throttle for import runs
	CommitDelay time.Duration `env:"SKUWATCH_COMMIT_DELAY" env-default:"120ms"`

	// CommitRetries bounds the retry attempts for one store write
	CommitRetries uint64 `env:"SKUWATCH_COMMIT_RETRIES" env-default:"3"`

	// UnknownSupplierBucket counts assignments referencing unknown supplier
	// ids under a synthetic "Unknown supplier" row instead of dropping them
	UnknownSupplierBucket bool `env:"SKUWATCH_UNKNOWN_SUPPLIER_BUCKET" env-default:"false"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}
	return &cfg, nil
}
