package service

import (
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/adapter"
	"github.com/MKhiriev/go-bangs/internal/bang"
	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	Resolver       Resolver
	TabService     TabService
	TriggerCache   *TriggerCache
}

func NewServices(
	storages *store.Storages,
	catalog *bang.Catalog,
	titles adapter.TitleFetcher,
	runner TaskRunner,
	rec *metrics.Recorder,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.Pinger, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	cache := NewTriggerCache(storages.BangRepository, storages.TabGroupRepository, cfg.Bangs.TriggerCacheTTL, logger)
	commands := NewCommandHandler(storages, cache, titles, runner, logger)
	limiter := NewAnonymousRateLimiter(cfg.RateLimit, rec)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService: appInfo,
		Resolver: NewResolver(catalog, storages.BangRepository, cache, commands, limiter, runner,
			cfg.Bangs.DefaultProvider, rec, logger),
		TabService:   NewTabService(storages.TabGroupRepository, logger),
		TriggerCache: cache,
	}, nil
}
