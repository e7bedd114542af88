package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.DefaultTZ != 7.0 {
		t.Errorf("DefaultTZ = %v, want 7.0", cfg.DefaultTZ)
	}
	if cfg.SupportedYearMin != 1900 || cfg.SupportedYearMax != 2100 {
		t.Errorf("supported range = [%d, %d], want [1900, 2100]", cfg.SupportedYearMin, cfg.SupportedYearMax)
	}
	if cfg.NewMoonCacheSize != defaultNewMoonCacheSize {
		t.Errorf("NewMoonCacheSize = %d, want %d", cfg.NewMoonCacheSize, defaultNewMoonCacheSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("DEFAULT_TZ", "8.5")
	os.Setenv("CACHE_DB_PATH", "/data/test-cache.db")
	os.Setenv("API_KEY", "secret-key-123")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.DefaultTZ != 8.5 {
		t.Errorf("DefaultTZ = %v, want 8.5", cfg.DefaultTZ)
	}
	if cfg.CacheDBPath != "/data/test-cache.db" {
		t.Errorf("CacheDBPath = %q, want %q", cfg.CacheDBPath, "/data/test-cache.db")
	}
	if cfg.APIKey != "secret-key-123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "secret-key-123")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestConfig_Validate(t *testing.T) {
	base := func() Config {
		return Config{
			Port:                8080,
			Env:                 EnvDevelopment,
			DefaultTZ:           7.0,
			SupportedYearMin:    1900,
			SupportedYearMax:    2100,
			CacheDBPath:         "./data/test-cache.db",
			NewMoonCacheSize:    defaultNewMoonCacheSize,
			NewMoonDayCacheSize: defaultNewMoonDayCacheSize,
			Month11CacheSize:    defaultMonth11CacheSize,
			LogLevel:            "info",
			LogFormat:           "text",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"valid production config", func(c *Config) { c.Env = EnvProduction; c.APIKey = "required-in-prod" }, false},
		{"production requires API key", func(c *Config) { c.Env = EnvProduction }, true},
		{"invalid port - too low", func(c *Config) { c.Port = 0 }, true},
		{"invalid port - too high", func(c *Config) { c.Port = 70000 }, true},
		{"invalid environment", func(c *Config) { c.Env = "invalid" }, true},
		{"inverted supported year range", func(c *Config) { c.SupportedYearMin = 2100; c.SupportedYearMax = 1900 }, true},
		{"new moon cache below floor", func(c *Config) { c.NewMoonCacheSize = 1 }, true},
		{"month11 cache below floor", func(c *Config) { c.Month11CacheSize = 1 }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"empty cache db path", func(c *Config) { c.CacheDBPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "DEFAULT_TZ", "SUPPORTED_YEAR_MIN", "SUPPORTED_YEAR_MAX",
		"CACHE_DB_PATH", "NEW_MOON_CACHE_SIZE", "NEW_MOON_DAY_CACHE_SIZE", "MONTH11_CACHE_SIZE",
		"API_KEY", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
