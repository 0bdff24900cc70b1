// Package config loads runtime configuration for the hacksnooze client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally from a ./.env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the stories API
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//	-n int      stories fetched per refresh
//	-r string   render mode (text|html)
//	-l string   log level
//
// Environment
//
//	HACKSNOOZE_API_URL, HACKSNOOZE_DB, HACKSNOOZE_TIMEOUT ("5s"),
//	HACKSNOOZE_STORY_LIMIT, HACKSNOOZE_RENDER, HACKSNOOZE_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "5s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://hack-or-snooze-v3.herokuapp.com",
//	  "database_path": "hacksnooze.db",
//	  "request_timeout": "5s",
//	  "story_limit": 25,
//	  "render_mode": "text",
//	  "log_level": "info"
//	}
package config
