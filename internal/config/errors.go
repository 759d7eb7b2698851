package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN, in-memory DSN or empty master file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive generated password length).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidKDFConfigs indicates unusable Argon2id cost parameters.
	ErrInvalidKDFConfigs = errors.New("invalid kdf configuration")
)
