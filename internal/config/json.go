package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Session struct {
			Driver        string   `json:"driver"`
			RedisAddress  string   `json:"redis_address"`
			RedisPassword string   `json:"redis_password"`
			RedisDB       int      `json:"redis_db"`
			TTL           Duration `json:"ttl"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		CookieSecure    bool     `json:"cookie_secure"`
	} `json:"server,omitempty"`

	Bangs struct {
		CatalogFile     string   `json:"catalog_file"`
		DefaultProvider string   `json:"default_provider"`
		TriggerCacheTTL Duration `json:"trigger_cache_ttl"`
	} `json:"bangs,omitempty"`

	RateLimit struct {
		WarnAt    int      `json:"warn_at"`
		LimitAt   int      `json:"limit_at"`
		BaseDelay Duration `json:"base_delay"`
	} `json:"rate_limit,omitempty"`

	Adapter struct {
		TitleFetchTimeout Duration `json:"title_fetch_timeout"`
		UserAgent         string   `json:"user_agent"`
		MaxBodyBytes      int64    `json:"max_body_bytes"`
	} `json:"adapter,omitempty"`

	Workers struct {
		BackgroundWorkers   int      `json:"background_workers"`
		BackgroundQueueSize int      `json:"background_queue_size"`
		TaskTimeout         Duration `json:"task_timeout"`
		ReminderInterval    Duration `json:"reminder_interval"`
		ReminderBatchSize   int      `json:"reminder_batch_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			Version:      jsonCfg.App.Version,
			LogLevel:     jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Session: Session{
				Driver:        jsonCfg.Storage.Session.Driver,
				RedisAddress:  jsonCfg.Storage.Session.RedisAddress,
				RedisPassword: jsonCfg.Storage.Session.RedisPassword,
				RedisDB:       jsonCfg.Storage.Session.RedisDB,
				TTL:           time.Duration(jsonCfg.Storage.Session.TTL),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			CookieSecure:    jsonCfg.Server.CookieSecure,
		},
		Bangs: Bangs{
			CatalogFile:     jsonCfg.Bangs.CatalogFile,
			DefaultProvider: jsonCfg.Bangs.DefaultProvider,
			TriggerCacheTTL: time.Duration(jsonCfg.Bangs.TriggerCacheTTL),
		},
		RateLimit: RateLimit{
			WarnAt:    jsonCfg.RateLimit.WarnAt,
			LimitAt:   jsonCfg.RateLimit.LimitAt,
			BaseDelay: time.Duration(jsonCfg.RateLimit.BaseDelay),
		},
		Adapter: Adapter{
			TitleFetchTimeout: time.Duration(jsonCfg.Adapter.TitleFetchTimeout),
			UserAgent:         jsonCfg.Adapter.UserAgent,
			MaxBodyBytes:      jsonCfg.Adapter.MaxBodyBytes,
		},
		Workers: Workers{
			BackgroundWorkers:   jsonCfg.Workers.BackgroundWorkers,
			BackgroundQueueSize: jsonCfg.Workers.BackgroundQueueSize,
			TaskTimeout:         time.Duration(jsonCfg.Workers.TaskTimeout),
			ReminderInterval:    time.Duration(jsonCfg.Workers.ReminderInterval),
			ReminderBatchSize:   jsonCfg.Workers.ReminderBatchSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
