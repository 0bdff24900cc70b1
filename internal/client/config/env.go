package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envAPIBaseURL     = "HACKSNOOZE_API_URL"
	envDatabasePath   = "HACKSNOOZE_DB"
	envRequestTimeout = "HACKSNOOZE_TIMEOUT"
	envStoryLimit     = "HACKSNOOZE_STORY_LIMIT"
	envRenderMode     = "HACKSNOOZE_RENDER"
	envLogLevel       = "HACKSNOOZE_LOG_LEVEL"
)

// parseEnv loads ./.env when present (existing variables win) and overlays
// the HACKSNOOZE_* variables that are set. Malformed numbers or durations
// panic, like the other loaders.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()
	applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(envAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(envDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(envRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(envStoryLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.StoryLimit = n
	}
	if v, ok := lookup(envRenderMode); ok && v != "" {
		cfg.RenderMode = v
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
