package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/inovacc/gitmsg/internal/model"
)

//go:embed static/*
var staticFS embed.FS

// Config holds the web server configuration
type Config struct {
	Port int
	Host string

	// APIToken, when set, must be presented as a bearer token on API routes
	APIToken string
}

// DefaultConfig returns the default web server configuration
func DefaultConfig() Config {
	return Config{
		Port: 8004,
		Host: "localhost",
	}
}

// Service is the message and repository API the server exposes.
type Service interface {
	CreateMessage(ctx context.Context, content string, repositoryID *int64) (*model.Message, error)
	ListMessages(ctx context.Context) ([]model.Message, error)
	RegisterRepository(ctx context.Context, owner, name string) (*model.Repository, error)
	ListRepositories(ctx context.Context) ([]model.Repository, error)
	SyncAllPending(ctx context.Context) (model.SweepReport, error)
}

// Pinger reports storage health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the web server
type Server struct {
	httpServer *http.Server
	service    Service
	store      Pinger
	config     Config
	logger     *slog.Logger
	handler    http.Handler
}

// New creates a new web server
func New(config Config, service Service, store Pinger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		service: service,
		store:   store,
		config:  config,
		logger:  logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.handler = s.requestIDMiddleware(s.loggingMiddleware(s.corsMiddleware(s.authMiddleware(mux))))

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := s.Addr()

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Minute, // POST /push runs a full sweep
		IdleTimeout:       120 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	s.logger.Info("web server starting", "url", "http://"+listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background()) //nolint:contextcheck // parent context cancelled, use background for shutdown
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully shuts down the web server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down web server")

	return s.httpServer.Shutdown(shutdownCtx)
}
