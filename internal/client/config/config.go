package config

import "time"

// Config holds runtime settings for the LibriVault CLI.
//
// Fields:
//   - APIBaseURL: base URL of the LibriVault REST API, e.g. "http://localhost:8080/api".
//   - RequestTimeout: per-request timeout applied to every API call.
//   - DatabaseFile: path of the local sqlite store holding the saved token.
//   - LogLevel: minimum log level (debug|info|warn|error).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseFile   string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseFile = "librivault.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON file (if given), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
