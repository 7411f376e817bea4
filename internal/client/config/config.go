// Package config handles configuration for the stockpos CLI client.
package config

import "time"

// Config holds runtime settings for the stockpos CLI.
//
// Fields:
//   - ServerEndpointURL: base URL of the gateway HTTP endpoint.
//   - RequestTimeout: per-request deadline for gateway calls.
//   - ExportDir: directory where reports and backups are written.
//   - OnlineCheckInterval: how often the client probes gateway reachability.
type Config struct {
	ServerEndpointURL   string
	RequestTimeout      time.Duration
	ExportDir           string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 5 * time.Second
	c.ExportDir = "exports"
	c.OnlineCheckInterval = 3 * time.Second
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
