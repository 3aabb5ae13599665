package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	envAPIBaseURL     = "LIBRIVAULT_API_URL"
	envRequestTimeout = "LIBRIVAULT_REQUEST_TIMEOUT"
	envDatabaseFile   = "LIBRIVAULT_DB_FILE"
	envLogLevel       = "LIBRIVAULT_LOG_LEVEL"
)

// parseEnv overlays cfg with values from the environment. A .env file in the
// working directory is loaded first, without overriding variables already
// set in the process environment. Unset variables leave the current value
// untouched; a malformed timeout is ignored rather than fatal.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDatabaseFile); v != "" {
		cfg.DatabaseFile = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
