package config

import "time"

// DefaultAPIBaseURL is the public Papers API.
const DefaultAPIBaseURL = "https://jssia-backend.onrender.com"

// Config holds runtime settings for the papers CLI.
//
// RequestTimeout of zero leaves requests to the transport defaults.
// OnlineCheckInterval of zero disables the connectivity watcher.
type Config struct {
	APIBaseURL          string
	LedgerPath          string
	DownloadDir         string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.LedgerPath = "votes.db"
	c.DownloadDir = "download"
	c.RequestTimeout = 0
	c.OnlineCheckInterval = 10 * time.Second
	c.LogLevel = "info"
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
