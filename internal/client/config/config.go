// Package config assembles runtime settings for the Eco-Trackify client.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the backend, without /api/v1.
//   - RequestTimeout: per-request HTTP timeout; zero keeps the transport default.
//   - DatabasePath: location of the local session database file.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8020"
	c.RequestTimeout = 0
	c.DatabasePath = "ecotrackify.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
