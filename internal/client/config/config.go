package config

import (
	"fmt"
	"time"
)

const (
	RenderText = "text"
	RenderHTML = "html"
)

// Config holds runtime settings for the hacksnooze client.
//
// Fields:
//   - APIBaseURL: base URL of the stories API.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout.
//   - StoryLimit: maximum stories fetched per refresh, 0 for the server default.
//   - RenderMode: "text" or "html".
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	StoryLimit     int
	RenderMode     string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	c.DatabasePath = "hacksnooze.db"
	c.RequestTimeout = 10 * time.Second
	c.StoryLimit = 0
	c.RenderMode = RenderText
	c.LogLevel = "info"
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is empty")
	}
	if c.RenderMode != RenderText && c.RenderMode != RenderHTML {
		return fmt.Errorf("unknown render mode %q", c.RenderMode)
	}
	if c.StoryLimit < 0 {
		return fmt.Errorf("story limit must not be negative")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
