// Package config handles configuration for the tracker CLI, including
// defaults, JSON overlay, environment overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the tracker.
//
// Fields:
//   - APIBaseURL: base URL of the replay-service REST API.
//   - UploadRequestURL: endpoint that allocates upload slots.
//   - APIKey: static API key sent on every replay-service request.
//   - AppID / AppVersion: identify this client in the User-Agent string.
//   - ClientBuild: game client build number reported with each upload.
//   - DatabasePath: path of the local bbolt database file.
//   - RequestTimeout: per-request HTTP timeout.
//   - TestData: mark newly minted tokens as test data.
type Config struct {
	APIBaseURL       string
	UploadRequestURL string
	APIKey           string
	AppID            string
	AppVersion       string
	ClientBuild      int
	DatabasePath     string
	RequestTimeout   time.Duration
	TestData         bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://hsreplay.net/api/v1/"
	c.UploadRequestURL = "https://upload.hsreplay.net/api/v1/replay/upload/request"
	c.APIKey = "8b27e53b-0256-4ff1-b134-f531009c05a3"
	c.AppID = "net.mbonnin.arcanetracker"
	c.AppVersion = "1.0"
	c.ClientBuild = 20022
	c.DatabasePath = "tracker.db"
	c.RequestTimeout = 30 * time.Second
	c.TestData = false
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
