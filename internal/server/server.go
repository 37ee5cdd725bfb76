package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/handler"
	"github.com/MKhiriev/go-bangs/internal/logger"
)

const defaultShutdownTimeout = 15 * time.Second

type server struct {
	httpServer      *httpServer
	workers         Stopper
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers Stopper, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         workers,
		shutdownTimeout: timeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

// Shutdown stops the HTTP server first so no new background work is queued,
// then drains the workers. Later calls are no-ops.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.httpServer.Shutdown(ctx)

		if s.workers != nil {
			if err := s.workers.Stop(ctx); err != nil {
				s.logger.Err(err).Msg("workers did not stop cleanly")
			}
		}
	})
}

func (s *server) run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("%w %s: %w", errListen, s.httpServer.server.Addr, err)
	}
	return s.serve(ctx, ln)
}

// serve runs the workers and the HTTP server on ln until ctx is done or the
// server fails, then shuts everything down.
func (s *server) serve(ctx context.Context, ln net.Listener) error {
	if s.workers != nil {
		s.workers.Run()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(ln)
	}()
	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErr:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
