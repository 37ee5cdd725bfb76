package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates a missing DSN or an unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates an unknown session driver or a
	// Redis driver without an address.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBangsConfigs indicates an unknown default search provider.
	ErrInvalidBangsConfigs = errors.New("invalid bangs configuration")
	// ErrInvalidRateLimitConfigs indicates thresholds that are not 0 < warn < limit.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker count or interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
