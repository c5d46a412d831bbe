package config

import (
	"time"

	"github.com/dmitrijs2005/denidash/internal/client/api"
)

// Config holds runtime settings for the dashboard CLI.
//
// Fields:
//   - APIURL: base URL of the dashboard REST API, endpoints are appended to it.
//   - StoragePath: SQLite file holding the local session.
//   - RequestTimeout: upper bound for a single API call; zero means none.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIURL         string        `env:"DENIDASH_API_URL"`
	StoragePath    string        `env:"DENIDASH_STORAGE_PATH"`
	RequestTimeout time.Duration `env:"DENIDASH_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"DENIDASH_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = api.DefaultBaseURL
	c.StoragePath = "denidash.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
