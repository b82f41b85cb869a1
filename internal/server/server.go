// Package server provides the HTTP API for vecplot.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hyperjump/vecplot/internal/chart"
	"github.com/hyperjump/vecplot/internal/config"
	"github.com/hyperjump/vecplot/pkg/utils"
	"go.uber.org/zap"
)

// Server is the HTTP server for the vecplot API.
type Server struct {
	mu     sync.RWMutex
	cfg    *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server. cfg supplies both the listen address and the chart settings.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: utils.LoggerOrNop(logger),
	}
}

// SetConfig replaces the chart settings used by later requests. The listen address is not changed.
func (s *Server) SetConfig(cfg *config.Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	s.logger.Info("chart config reloaded")
}

func (s *Server) config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *Server) renderer() *chart.Renderer {
	return chart.NewRenderer(s.config(), chart.WithLogger(s.logger))
}

// Routes returns the HTTP handler with all API routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/chart.png", s.handleChart)
	r.Get("/api/v1/vector", s.handleInspect)
	r.Get("/api/v1/vector/normalize", s.handleNormalize)
	r.Get("/api/v1/vector/equal", s.handleEqual)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	sc := s.config().Server
	addr := fmt.Sprintf("%s:%d", sc.Host, sc.Port)
	s.mu.Lock()
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}
	srv := s.server
	s.mu.Unlock()
	s.logger.Info("Starting server", zap.String("addr", addr))
	return srv.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.RLock()
	srv := s.server
	s.mu.RUnlock()
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}
