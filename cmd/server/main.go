package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bangs/internal/adapter"
	"github.com/MKhiriev/go-bangs/internal/bang"
	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/handler"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/server"
	"github.com/MKhiriev/go-bangs/internal/service"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bangs-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	storages := store.NewStorages(db, log)

	sessions, closeSessions, err := newSessionStore(ctx, cfg.Storage.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer closeSessions()

	catalog, err := bang.LoadCatalog(cfg.Bangs.CatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading bang catalog")
	}
	log.Info().Int("bangs", catalog.Len()).Msg("bang catalog loaded")

	rec := metrics.NewRecorder()
	runner := workers.NewBackgroundRunner(cfg.Workers, log, rec)
	titles := adapter.NewHTTPTitleFetcher(cfg.Adapter, log)

	services, err := service.NewServices(storages, catalog, titles, runner, rec, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	reminderWorker := workers.NewReminderWorker(
		storages.ReminderRepository,
		storages.UserRepository,
		workers.NewLogNotifier(log),
		cfg.Workers,
		log,
	)
	ws := workers.NewWorkers(runner, reminderWorker)

	handlers, err := handler.NewHandlers(services, sessions, rec, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSessionStore builds the store named by cfg.Driver. The returned func
// releases its connection.
func newSessionStore(ctx context.Context, cfg config.Session, log *logger.Logger) (session.Store, func(), error) {
	switch cfg.Driver {
	case config.SessionDriverRedis:
		client, err := session.NewRedisClient(ctx, session.DefaultRedisOptions(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB), log)
		if err != nil {
			return nil, nil, err
		}
		redisStore := session.NewRedisStore(client, cfg.TTL)
		return redisStore, func() {
			if err := redisStore.Close(); err != nil {
				log.Err(err).Msg("error closing redis session store")
			}
		}, nil
	case config.SessionDriverMemory, "":
		return session.NewMemoryStore(cfg.TTL), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", cfg.Driver)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
