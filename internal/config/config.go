// Package config loads uaforge settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DBPath        string  `env:"UAFORGE_DB"`
	Threshold     float64 `env:"UAFORGE_THRESHOLD" envDefault:"90"`
	MaxAttempts   int     `env:"UAFORGE_MAX_ATTEMPTS" envDefault:"5"`
	LogLevel      string  `env:"UAFORGE_LOG_LEVEL" envDefault:"info"`
	LogFormat     string  `env:"UAFORGE_LOG_FORMAT" envDefault:"text"`
	Addr          string  `env:"UAFORGE_ADDR" envDefault:":8080"`
	RatePerMinute int     `env:"UAFORGE_RATE_PER_MINUTE" envDefault:"10"`
	RateBurst     int     `env:"UAFORGE_RATE_BURST" envDefault:"10"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment. An unset UAFORGE_DB resolves to DefaultDBPath.
func Load() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DefaultDBPath is ~/.uaforge/useragents.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".uaforge", "useragents.db")
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.DBPath == "" {
		errs = append(errs, errors.New("UAFORGE_DB cannot be empty"))
	}
	if c.Threshold <= 0 || c.Threshold > 100 {
		errs = append(errs, fmt.Errorf("UAFORGE_THRESHOLD must be within (0, 100], got %v", c.Threshold))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("UAFORGE_MAX_ATTEMPTS must be >= 1, got %d", c.MaxAttempts))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("UAFORGE_LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if c.RatePerMinute <= 0 {
		errs = append(errs, fmt.Errorf("UAFORGE_RATE_PER_MINUTE must be > 0, got %d", c.RatePerMinute))
	}
	if c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("UAFORGE_RATE_BURST must be > 0, got %d", c.RateBurst))
	}
	return errors.Join(errs...)
}

// Logger builds the slog logger described by LogLevel and LogFormat.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("UAFORGE_LOG_LEVEL must be debug, info, warn or error, got %q", s)
}
