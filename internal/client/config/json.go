package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/reflecta/internal/flagx"
	"github.com/dmitrijs2005/reflecta/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields keep their zero value and do not override earlier sources.
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	DataDir             string         `json:"data_dir"`
	StorageDriver       string         `json:"storage_driver"`
	LogLevel            string         `json:"log_level"`
	LogBackend          string         `json:"log_backend"`
	NotificationTTL     timex.Duration `json:"notification_ttl"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	ClockInterval       timex.Duration `json:"clock_interval"`
}

// parseJson overlays cfg with the file named by flagx.ConfigFile. No file
// means no changes.
func parseJson(cfg *Config) error {
	path := flagx.ConfigFile()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	setDuration(&cfg.NotificationTTL, jc.NotificationTTL.Duration)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval.Duration)
	setDuration(&cfg.ClockInterval, jc.ClockInterval.Duration)
	return nil
}
