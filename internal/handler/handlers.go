package handler

import (
	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/handler/http"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/service"
	"github.com/MKhiriev/go-bangs/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(
	services *service.Services,
	sessions session.Store,
	rec *metrics.Recorder,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || sessions == nil {
		return nil, errMissingDependencies
	}

	return &Handlers{HTTP: http.NewHandler(services, sessions, rec, cfg, logger)}, nil
}
