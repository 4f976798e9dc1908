// Package server provides the JSON API HTTP server implementation
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pantrypilot/v1/internal/infrastructure/config"
	"github.com/pantrypilot/v1/internal/infrastructure/http/handlers"
	"github.com/pantrypilot/v1/internal/infrastructure/http/middleware"
	"github.com/pantrypilot/v1/internal/infrastructure/monitoring"
	"github.com/pantrypilot/v1/internal/ports/inbound"
)

// Server represents the HTTP server
type Server struct {
	config         *config.Config
	logger         *zap.Logger
	router         *chi.Mux
	server         *http.Server
	scalingService inbound.ScalingService
	metrics        *monitoring.Metrics
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	scalingService inbound.ScalingService,
	metrics *monitoring.Metrics,
) *Server {
	s := &Server{
		config:         cfg,
		logger:         logger,
		scalingService: scalingService,
		metrics:        metrics,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Metrics(s.metrics))
	r.Use(chimiddleware.Recoverer)
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS())
	}
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	// Operational endpoints
	r.Get(s.config.Monitoring.HealthCheckPath, s.handleHealthCheck)
	if s.config.Monitoring.EnableMetrics {
		r.Method(http.MethodGet, s.config.Monitoring.MetricsPath, promhttp.Handler())
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		h := handlers.NewScalingAPIHandlers(s.scalingService, s.logger)

		r.Post("/quantities/parse", h.ParseQuantity)
		r.Post("/ingredients/scale", h.ScaleIngredients)
		r.Route("/recipes", func(r chi.Router) {
			r.Post("/scale", h.ScaleRecipe)
			r.Post("/import", h.ImportRecipe)
		})
	})

	return r
}

// handleHealthCheck returns service health status
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   s.config.App.Name,
		"version":   s.config.App.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Router exposes the configured router, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
