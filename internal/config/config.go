// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Calendar engine
	DefaultTZ        float64 // default local offset (hours) for conversions
	SupportedYearMin int     // lower bound of the guaranteed-correct year range
	SupportedYearMax int     // upper bound of the guaranteed-correct year range

	// Cache
	CacheDBPath         string // path to the SQLite precomputed-year cache
	NewMoonCacheSize    int    // LRU capacity for new_moon(k)
	NewMoonDayCacheSize int    // LRU capacity for new_moon_day(k, tz)
	Month11CacheSize    int    // LRU capacity for lunar_month_11(y, tz)

	// Authentication
	APIKey string // API key for authenticated admin endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Spec-mandated LRU capacity floors (spec §4.8) and supported year range
// (spec §3), used as defaults when the environment does not override them.
const (
	defaultNewMoonCacheSize    = 512
	defaultNewMoonDayCacheSize = 256
	defaultMonth11CacheSize    = 128
	defaultSupportedYearMin    = 1900
	defaultSupportedYearMax    = 2100
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	// This is a no-op in production where env vars are set directly
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Calendar engine
	cfg.DefaultTZ = getEnvFloat("DEFAULT_TZ", 7.0)
	cfg.SupportedYearMin = getEnvInt("SUPPORTED_YEAR_MIN", defaultSupportedYearMin)
	cfg.SupportedYearMax = getEnvInt("SUPPORTED_YEAR_MAX", defaultSupportedYearMax)

	// Cache
	cfg.CacheDBPath = getEnv("CACHE_DB_PATH", "./data/vnlunar-cache.db")
	cfg.NewMoonCacheSize = getEnvInt("NEW_MOON_CACHE_SIZE", defaultNewMoonCacheSize)
	cfg.NewMoonDayCacheSize = getEnvInt("NEW_MOON_DAY_CACHE_SIZE", defaultNewMoonDayCacheSize)
	cfg.Month11CacheSize = getEnvInt("MONTH11_CACHE_SIZE", defaultMonth11CacheSize)

	// Authentication
	cfg.APIKey = getEnv("API_KEY", "")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	// Validate port range
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	// Validate year range
	if c.SupportedYearMin >= c.SupportedYearMax {
		errs = append(errs, fmt.Errorf("SUPPORTED_YEAR_MIN (%d) must be less than SUPPORTED_YEAR_MAX (%d)", c.SupportedYearMin, c.SupportedYearMax))
	}

	// Validate cache sizes against the spec-mandated floors
	if c.NewMoonCacheSize < defaultNewMoonCacheSize {
		errs = append(errs, fmt.Errorf("NEW_MOON_CACHE_SIZE must be at least %d, got %d", defaultNewMoonCacheSize, c.NewMoonCacheSize))
	}
	if c.NewMoonDayCacheSize < defaultNewMoonDayCacheSize {
		errs = append(errs, fmt.Errorf("NEW_MOON_DAY_CACHE_SIZE must be at least %d, got %d", defaultNewMoonDayCacheSize, c.NewMoonDayCacheSize))
	}
	if c.Month11CacheSize < defaultMonth11CacheSize {
		errs = append(errs, fmt.Errorf("MONTH11_CACHE_SIZE must be at least %d, got %d", defaultMonth11CacheSize, c.Month11CacheSize))
	}

	// Validate database path is set
	if c.CacheDBPath == "" {
		errs = append(errs, errors.New("CACHE_DB_PATH is required"))
	}

	// API key is required in production
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as a float64 with a default fallback.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
