package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hacksnooze/internal/flagx"
	"github.com/dmitrijs2005/hacksnooze/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// may be written as a string like "5s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StoryLimit     *int           `json:"story_limit"`
	RenderMode     string         `json:"render_mode"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Keys missing from the file keep their current values.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoryLimit != nil {
		cfg.StoryLimit = *jc.StoryLimit
	}
	if jc.RenderMode != "" {
		cfg.RenderMode = jc.RenderMode
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
