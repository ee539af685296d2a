// Package config loads runtime configuration for the FacturaDash CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. FACTURADASH_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local cache database
//	-l string   log level: debug, info, warn, error
//	-login      start at the login prompt, skipping the session check
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3001/api/v1",
//	  "request_timeout": "10s",
//	  "cache_path": "/home/ana/.facturadash/cache.db",
//	  "log_level": "info",
//	  "start_at_login": false
//	}
package config
