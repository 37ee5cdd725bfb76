package http

import (
	"time"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/service"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/utils"
)

type Handler struct {
	services *service.Services
	sessions session.Store
	metrics  *metrics.Recorder
	pages    *pages
	ids      *utils.UUIDGenerator

	cookieSecure bool
	sessionTTL   time.Duration

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	sessions session.Store,
	rec *metrics.Recorder,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		sessions:     sessions,
		metrics:      rec,
		pages:        newPages(),
		ids:          utils.NewUUIDGenerator(),
		cookieSecure: cfg.Server.CookieSecure,
		sessionTTL:   cfg.Storage.Session.TTL,
		logger:       logger,
	}
}
