package config

import (
	validator "github.com/go-playground/validator/v10"
)

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func validateStorageDriver(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "sqlite", "diskv", "memory":
		return true
	}
	return false
}

func validate(cfg *Config) error {
	v := validator.New()

	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}
	if err := v.RegisterValidation("storagedriver", validateStorageDriver); err != nil {
		return err
	}

	return v.Struct(cfg)
}
