// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the go-bangs service.
// It is populated by merging environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token verification settings, version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and session store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Bangs holds built-in catalog and resolution settings.
	Bangs Bangs `envPrefix:"BANGS_"`

	// RateLimit holds the anonymous rate limiter thresholds.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Adapter holds the outbound page-title fetcher settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background runner and reminder worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey verifies the HMAC signature of user JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of user JWTs.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is reported in logs at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB      DB      `envPrefix:"DB_"`
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// Driver is "postgres" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string, or the database file path for sqlite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session holds the session store settings.
type Session struct {
	// Driver is "memory" or "redis".
	// Env: STORAGE_SESSION_DRIVER
	Driver string `env:"DRIVER"`

	// RedisAddress is the "host:port" of the Redis server.
	// Env: STORAGE_SESSION_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// Env: STORAGE_SESSION_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: STORAGE_SESSION_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// TTL is how long an idle session is kept.
	// Env: STORAGE_SESSION_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// CookieSecure marks the session cookie Secure.
	// Env: SERVER_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`
}

// Bangs holds resolution settings.
type Bangs struct {
	// CatalogFile is an optional YAML file merged over the embedded catalog.
	// Env: BANGS_CATALOG_FILE
	CatalogFile string `env:"CATALOG_FILE"`

	// DefaultProvider is used for anonymous searches and users without one.
	// Env: BANGS_DEFAULT_PROVIDER
	DefaultProvider string `env:"DEFAULT_PROVIDER"`

	// TriggerCacheTTL is the lifetime of a session's trigger cache entry.
	// Env: BANGS_TRIGGER_CACHE_TTL
	TriggerCacheTTL time.Duration `env:"TRIGGER_CACHE_TTL"`
}

// RateLimit holds anonymous rate limiter settings.
type RateLimit struct {
	// WarnAt is the search count that shows the warning interstitial.
	// Env: RATE_LIMIT_WARN_AT
	WarnAt int `env:"WARN_AT"`

	// LimitAt is the search count after which responses are delayed.
	// Env: RATE_LIMIT_LIMIT_AT
	LimitAt int `env:"LIMIT_AT"`

	// BaseDelay is the delay doubled when LimitAt is reached.
	// Env: RATE_LIMIT_BASE_DELAY
	BaseDelay time.Duration `env:"BASE_DELAY"`
}

// Adapter holds outbound HTTP settings for the page-title fetcher.
type Adapter struct {
	// TitleFetchTimeout bounds a single title fetch.
	// Env: ADAPTER_TITLE_FETCH_TIMEOUT
	TitleFetchTimeout time.Duration `env:"TITLE_FETCH_TIMEOUT"`

	// UserAgent is sent with title fetch requests.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// MaxBodyBytes caps how much of a page is read to find its title.
	// Env: ADAPTER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Workers holds background processing settings.
type Workers struct {
	// BackgroundWorkers is the number of goroutines running fire-and-forget tasks.
	// Env: WORKERS_BACKGROUND_WORKERS
	BackgroundWorkers int `env:"BACKGROUND_WORKERS"`

	// BackgroundQueueSize is the number of tasks that may wait for a worker.
	// Env: WORKERS_BACKGROUND_QUEUE_SIZE
	BackgroundQueueSize int `env:"BACKGROUND_QUEUE_SIZE"`

	// TaskTimeout bounds a single background task.
	// Env: WORKERS_TASK_TIMEOUT
	TaskTimeout time.Duration `env:"TASK_TIMEOUT"`

	// ReminderInterval is how often due reminders are polled.
	// Env: WORKERS_REMINDER_INTERVAL
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"`

	// ReminderBatchSize is the maximum number of reminders handled per poll.
	// Env: WORKERS_REMINDER_BATCH_SIZE
	ReminderBatchSize int `env:"REMINDER_BATCH_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the configuration.
// For every field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
