// Package config loads runtime configuration for the recipe console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c / -config or RECIPEADMIN_CONFIG.
//     Files ending in .toml are decoded as TOML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the recipe API (e.g. http://127.0.0.1:5000/admin)
//	-t duration   per-request timeout (e.g. 15s)
//	-d string     path of the local session database
//	-l string     log level: debug, info, warn, error
//	-f string     log format: text or json
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "15s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000/admin",
//	  "request_timeout": "15s",
//	  "state_db": "~/.recipeadmin/state.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
