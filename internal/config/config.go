// Package config loads runtime settings for the shelter portal.
//
// Sources are applied in order, later ones winning:
// built-in defaults, environment variables (with optional .env file),
// a JSON config file (-c/-config), and command-line flags.
package config

import "time"

// Config holds the portal's runtime settings.
//
// The three base URLs are the logical backend origins: the main API, the
// notification service (websocket), and the file service that mints
// presigned upload URLs.
type Config struct {
	APIBaseURL         string
	NotificationWSURL  string
	FileServiceBaseURL string

	RequestTimeout time.Duration
	PageSize       int
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000"
	c.NotificationWSURL = "ws://127.0.0.1:5100"
	c.FileServiceBaseURL = "http://127.0.0.1:5200"
	c.RequestTimeout = 30 * time.Second
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given), and command-line flags (if given).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
