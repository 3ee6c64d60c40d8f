// Package config loads, validates and writes anvilcost settings files.
package config

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidTOML is returned when a settings file is not valid TOML.
	ErrInvalidTOML = errors.New("invalid TOML")

	// ErrInvalidPermissions is returned when a settings file is world-writable.
	ErrInvalidPermissions = errors.New("insecure config file permissions")

	// ErrConfigNotFound is returned when an explicitly requested file is missing.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigExists is returned when writing would overwrite an existing file.
	ErrConfigExists = errors.New("config file already exists")

	// ErrInvalidConfig is returned when values cannot be decoded into the schema,
	// including unknown keys.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrValidationFailed is returned when decoded values violate the schema.
	ErrValidationFailed = errors.New("config validation failed")
)
