package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a port outside 1..65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates unusable users API client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
