// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/bang"
)

// validate checks that the merged config can start the service.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Session.Driver {
	case SessionDriverMemory:
	case SessionDriverRedis:
		if cfg.Storage.Session.RedisAddress == "" {
			return fmt.Errorf("%w: redis driver needs an address", ErrInvalidSessionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown session driver %q", ErrInvalidSessionConfigs, cfg.Storage.Session.Driver)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if !bang.IsKnownProvider(cfg.Bangs.DefaultProvider) {
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidBangsConfigs, cfg.Bangs.DefaultProvider)
	}

	if cfg.RateLimit.WarnAt <= 0 || cfg.RateLimit.LimitAt <= cfg.RateLimit.WarnAt {
		return fmt.Errorf("%w: need 0 < warn_at < limit_at", ErrInvalidRateLimitConfigs)
	}

	if cfg.Workers.BackgroundWorkers <= 0 || cfg.Workers.ReminderInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
