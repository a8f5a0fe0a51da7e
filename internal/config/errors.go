package config

import "errors"

// Validation errors returned when required configuration values are missing
// or invalid. All of them are fatal at startup.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided. The server refuses to start without one.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrMissingServerAddress indicates that no HTTP listen address was
	// provided for the server.
	ErrMissingServerAddress = errors.New("server address is not configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
