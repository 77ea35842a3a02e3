package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	NewRelic NewRelicConfig
	LogLevel string
}

type ServerConfig struct {
	Port       string
	Env        string
	Test       bool
	Production bool
}

// CatalogConfig points at the car catalog. An empty URL disables the
// catalog backed routes, an empty cache URI runs them uncached.
type CatalogConfig struct {
	URL      string
	Timeout  time.Duration
	CacheURI string
	CacheTTL time.Duration
}

// DatabaseConfig is the bookings database. An empty URL disables the audit route.
type DatabaseConfig struct {
	URL string
}

type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

func Load() *Config {
	env := getEnv("ENV", "development")

	return &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "8080"),
			Env:        env,
			Test:       getBoolEnv("TEST", false),
			Production: env == "production",
		},
		Catalog: CatalogConfig{
			URL:      getEnv("CATALOG_API_URL", ""),
			Timeout:  getDurationEnv("CATALOG_TIMEOUT", 5*time.Second),
			CacheURI: getEnv("CATALOG_CACHE_REDIS_URI", ""),
			CacheTTL: getDurationEnv("CATALOG_CACHE_TTL", 10*time.Minute),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "rental-quote"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
