// Package config loads runtime configuration for the dashboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. DENIDASH_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the dashboard API
//	-s string   path of the local session database
//	-t int      request timeout (seconds)
//	-l string   log level
//
// Environment
//
//	DENIDASH_API_URL, DENIDASH_STORAGE_PATH,
//	DENIDASH_REQUEST_TIMEOUT (Go duration, e.g. "10s"), DENIDASH_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:3000/api",
//	  "storage_path": "denidash.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
