package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the FacturaDash CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api/v1 prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - CachePath: path of the local SQLite cache database.
//   - LogLevel: debug, info, warn or error.
//   - StartAtLogin: start the REPL at the login prompt, skipping the session check.
type Config struct {
	APIBaseURL     string        `env:"FACTURADASH_API_URL"`
	RequestTimeout time.Duration `env:"FACTURADASH_TIMEOUT"`
	CachePath      string        `env:"FACTURADASH_CACHE"`
	LogLevel       string        `env:"FACTURADASH_LOG_LEVEL"`
	StartAtLogin   bool          `env:"FACTURADASH_START_AT_LOGIN"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3001/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.CachePath = defaultCachePath()
	c.LogLevel = "info"
	c.StartAtLogin = false
}

// defaultCachePath puts the cache database under the user's home directory,
// falling back to the working directory when home cannot be resolved.
func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "facturadash.db"
	}
	return filepath.Join(home, ".facturadash", "cache.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
