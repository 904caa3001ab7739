// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"fitstats/internal/stats"
)

// Config holds application configuration.
type Config struct {
	Addr        string
	DatabaseURL string

	// Calendar
	Location  *time.Location
	WeekStart time.Weekday

	// Query defaults
	OverviewDays    int
	WeightTrendDays int

	// Logging
	LogLevel    string
	LogJSON     bool
	LogFile     string
	LogToStdout bool

	MetricsEnabled bool
	AuthDisabled   bool

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		LogJSON:     getBoolEnv("LOG_JSON", false),
		LogToStdout: getBoolEnv("LOG_TO_STDOUT", true),

		MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
		AuthDisabled:   getBoolEnv("AUTH_DISABLED", false),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", ""),
	}

	tz := getEnv("APP_TZ", "Local")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("APP_TZ %q: %w", tz, err)
	}
	cfg.Location = loc

	ws := getEnv("WEEK_START", "sunday")
	weekStart, ok := stats.ParseWeekday(ws)
	if !ok {
		return nil, fmt.Errorf("WEEK_START %q: not a weekday", ws)
	}
	cfg.WeekStart = weekStart

	if cfg.OverviewDays, err = getPositiveIntEnv("OVERVIEW_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.WeightTrendDays, err = getPositiveIntEnv("WEIGHT_TREND_DAYS", 30); err != nil {
		return nil, err
	}

	return cfg, nil
}

// OIDCEnabled reports whether single sign-on is configured.
func (c *Config) OIDCEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getPositiveIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s %q: %w", key, v, stats.ErrInvalidRange)
	}
	return n, nil
}
