// Package config loads runtime configuration for the Reflecta CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected with -c / -config or
//     $REFLECTA_CONFIG.
//  3. A .env file in the working directory, then REFLECTA_* environment
//     variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything.
//
// The merged result is validated before it is returned.
//
// Supported flags
//
//	-a string   base URL of the journaling backend
//	-d string   directory for durable client state
//	-s string   storage driver: sqlite, diskv or memory
//	-l string   log level: debug, info, warn or error
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8000",
//	  "data_dir": "~/.reflecta",
//	  "storage_driver": "sqlite",
//	  "log_level": "info",
//	  "log_backend": "slog",
//	  "notification_ttl": "3s",
//	  "online_check_interval": "3s",
//	  "clock_interval": "1s"
//	}
package config
