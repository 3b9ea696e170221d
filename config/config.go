// Package config loads and validates the resolver's runtime
// configuration: listen address, upstream resolver, cache backend
// selection, and metrics/logging knobs.
package config

import (
	"encoding/json"
	"log/slog"
	"os"
)

// Config is the resolver's full runtime configuration, loaded from a
// JSON file and overlaid onto defaults.
type Config struct {
	ListenAddress string `json:"listen_address"`
	ListenPort    int    `json:"listen_port"`

	UpstreamResolver string `json:"upstream_resolver"`
	UpstreamTimeout  int    `json:"upstream_timeout_seconds"`

	CacheBackend string `json:"cache_backend"`
	DisableCache bool   `json:"disable_cache"`

	DisableMetrics bool `json:"disable_metrics"`
	MetricsPort    int  `json:"metrics_port"`

	LogLevel int `json:"log_level"`
}

// Default returns the configuration used when no file is found, matching
// a typical unprivileged local resolver setup.
func Default() Config {
	return Config{
		ListenAddress:    "0.0.0.0",
		ListenPort:       8053,
		UpstreamResolver: "8.8.8.8:53",
		UpstreamTimeout:  2,
		CacheBackend:     "ttl",
		DisableCache:     false,
		DisableMetrics:   false,
		MetricsPort:      9153,
		LogLevel:         int(slog.LevelInfo),
	}
}

// Load reads config from path, overlaying it onto Default(). A missing
// file is not an error: the defaults are returned as-is, matching the
// teacher's fall-back-to-defaults behavior.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	cfg.prepare()
	return cfg, nil
}

// prepare fills in the listen port, upstream resolver, upstream timeout,
// cache backend and metrics port when an incomplete config file left them
// zero-valued. Other fields, including ListenAddress, are kept as loaded.
func (c *Config) prepare() {
	if c.ListenPort == 0 {
		c.ListenPort = 8053
	}
	if c.UpstreamResolver == "" {
		c.UpstreamResolver = "8.8.8.8:53"
	}
	if c.UpstreamTimeout <= 0 {
		c.UpstreamTimeout = 2
	}
	if c.CacheBackend == "" {
		c.CacheBackend = "ttl"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 9153
	}
}
