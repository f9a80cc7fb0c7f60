package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/toruinaba/structools/internal/config"
	"github.com/toruinaba/structools/internal/logging"
	"github.com/toruinaba/structools/internal/service"
)

// NewRouter wires the section endpoints, rate limiting, request logging
// and /metrics. reg collects the adapter's metrics and is served on
// /metrics.
func NewRouter(svc service.WebService, cfg *config.Config, logger *logging.Logger, reg *prometheus.Registry) *mux.Router {
	if logger == nil {
		logger = logging.Nop()
	}

	var stored func() float64
	if counter, ok := svc.(interface{ Len() int }); ok {
		stored = func() float64 { return float64(counter.Len()) }
	}
	metrics := NewMetrics(reg, stored)

	h := &Handler{
		svc:          svc,
		metrics:      metrics,
		maxBodyBytes: cfg.Server.MaxBodyBytes,
		maxItems:     cfg.Batch.MaxItems,
	}

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(instrument(logger.Named("http"), metrics))
	if cfg.RateLimit.Enabled {
		limiter := NewIPRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst, cfg.RateLimit.Idle)
		api.Use(limiter.Middleware)
	}

	api.HandleFunc("/sections", h.CreateSection).Methods(http.MethodPost)
	api.HandleFunc("/sections", h.ListSections).Methods(http.MethodGet)
	api.HandleFunc("/sections/{id}/properties", h.Properties).Methods(http.MethodGet)
	api.HandleFunc("/sections/{id}/width-thickness", h.WidthThickness).Methods(http.MethodGet)
	api.HandleFunc("/sections/{id}", h.DeleteSection).Methods(http.MethodDelete)
	api.HandleFunc("/properties/batch", h.Batch).Methods(http.MethodPost)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no such endpoint", Kind: "not_found"})
	})
	return router
}

// Server runs the HTTP adapter until its context is cancelled
type Server struct {
	srv    *http.Server
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer builds the router on a fresh Prometheus registry that also
// carries the Go runtime and process collectors
func NewServer(svc service.WebService, cfg *config.Config, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Server{
		srv: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      NewRouter(svc, cfg, logger, reg),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Handler exposes the router, for tests
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Run listens until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.srv.Addr))
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", s.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
