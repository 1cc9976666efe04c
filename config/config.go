/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/suparena/recordstore/storagemodels"
)

// Config holds the store's runtime settings.
type Config struct {
	// StartID is the first identifier the store assigns.
	StartID uint64 `env:"RECORDSTORE_START_ID" envDefault:"0"`
	// DefaultPageSize applies when a caller iterates with a page size of zero.
	DefaultPageSize int `env:"RECORDSTORE_DEFAULT_PAGE_SIZE" envDefault:"10"`
	// MaxPageSize caps iteration page sizes. Zero disables the cap.
	MaxPageSize int `env:"RECORDSTORE_MAX_PAGE_SIZE" envDefault:"0"`
	// SeedFile is an optional YAML file of users loaded at start-up.
	SeedFile string `env:"RECORDSTORE_SEED_FILE"`
	// CheckInvariants verifies both indexes after every write.
	CheckInvariants bool `env:"RECORDSTORE_CHECK_INVARIANTS" envDefault:"false"`
	LogLevel        string `env:"RECORDSTORE_LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"RECORDSTORE_LOG_FORMAT" envDefault:"text"`
	// MetricsAddr, when set, is where the CLI serves /metrics.
	MetricsAddr string `env:"RECORDSTORE_METRICS_ADDR"`
}

// Load reads a .env file from the working directory if one exists, then
// parses the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the store cannot run with.
func (c Config) Validate() error {
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < 0 {
		return fmt.Errorf("max page size must not be negative, got %d", c.MaxPageSize)
	}
	if c.MaxPageSize > 0 && c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default page size %d exceeds max %d", c.DefaultPageSize, c.MaxPageSize)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// PageSizes returns the page size configuration for the gate.
func (c Config) PageSizes() storagemodels.PageSizeConfig {
	return storagemodels.PageSizeConfig{Default: c.DefaultPageSize, Max: c.MaxPageSize}
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
