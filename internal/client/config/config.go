package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/reflecta/internal/common"
)

// Config holds runtime settings for the Reflecta CLI.
type Config struct {
	BaseURL             string        `env:"REFLECTA_BASE_URL" validate:"required,url"`
	DataDir             string        `env:"REFLECTA_DATA_DIR" validate:"required_unless=StorageDriver memory"`
	StorageDriver       string        `env:"REFLECTA_STORAGE" validate:"storagedriver"`
	LogLevel            string        `env:"REFLECTA_LOG_LEVEL" validate:"loglevel"`
	LogBackend          string        `env:"REFLECTA_LOG_BACKEND" validate:"oneof=slog zap"`
	NotificationTTL     time.Duration `env:"REFLECTA_NOTIFICATION_TTL" validate:"gt=0"`
	OnlineCheckInterval time.Duration `env:"REFLECTA_ONLINE_CHECK_INTERVAL" validate:"gt=0"`
	ClockInterval       time.Duration `env:"REFLECTA_CLOCK_INTERVAL" validate:"gt=0"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = common.DefaultBaseURL
	c.DataDir = "~/.reflecta"
	c.StorageDriver = "sqlite"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.NotificationTTL = 3 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.ClockInterval = time.Second
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and flags, in that order, and validates the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
