package config

import "time"

// Driver names accepted in configuration.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: "go-bangs",
			Version:     "dev",
			LogLevel:    "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
			Session: Session{
				Driver: SessionDriverMemory,
				TTL:    30 * 24 * time.Hour,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Bangs: Bangs{
			DefaultProvider: "duckduckgo",
			TriggerCacheTTL: 60 * time.Minute,
		},
		RateLimit: RateLimit{
			WarnAt:    10,
			LimitAt:   60,
			BaseDelay: 5 * time.Second,
		},
		Adapter: Adapter{
			TitleFetchTimeout: 5 * time.Second,
			UserAgent:         "go-bangs/1.0 (+title fetcher)",
			MaxBodyBytes:      1 << 20,
		},
		Workers: Workers{
			BackgroundWorkers:   4,
			BackgroundQueueSize: 256,
			TaskTimeout:         15 * time.Second,
			ReminderInterval:    time.Minute,
			ReminderBatchSize:   100,
		},
	}
}
