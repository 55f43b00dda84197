package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. The returned
// error wraps one of these together with the offending field.
var (
	// ErrInvalidAppConfigs indicates missing secrets or invalid token,
	// hashing or admin bootstrap settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a SQL driver
	// without DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
