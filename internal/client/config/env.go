package config

import (
	"errors"
	"io/fs"
	"time"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded into the process environment when present. Variables
// that are already set win over the file.
var dotEnvFile = ".env"

// parseEnv overlays cfg with REFLECTA_* variables. Unset or empty variables
// keep the current value.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var fromEnv Config
	if err := env.Parse(&fromEnv); err != nil {
		return err
	}

	setString(&cfg.BaseURL, fromEnv.BaseURL)
	setString(&cfg.DataDir, fromEnv.DataDir)
	setString(&cfg.StorageDriver, fromEnv.StorageDriver)
	setString(&cfg.LogLevel, fromEnv.LogLevel)
	setString(&cfg.LogBackend, fromEnv.LogBackend)
	setDuration(&cfg.NotificationTTL, fromEnv.NotificationTTL)
	setDuration(&cfg.OnlineCheckInterval, fromEnv.OnlineCheckInterval)
	setDuration(&cfg.ClockInterval, fromEnv.ClockInterval)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
