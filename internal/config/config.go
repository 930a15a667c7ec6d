package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Transport string
	Host      string
	Port      int
	DBPath    string
	GinMode   string

	// UsageTracking records which calculators run; inputs are never stored.
	UsageTracking bool

	Log LogConfig
}

// LogConfig selects the logger level ("debug", "info", "warn", "error") and
// encoding ("json" or "console").
type LogConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal in containers.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Transport = getEnv("TRANSPORT", "http")
	cfg.Host = getEnv("HOST", "0.0.0.0")
	cfg.Port = getEnvInt("PORT", 8011)
	cfg.DBPath = getEnv("DB_PATH", "/data/health-tools.db")
	cfg.GinMode = getEnv("GIN_MODE", "release")
	cfg.UsageTracking = getEnv("USAGE_TRACKING_ENABLED", "true") == "true"

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
