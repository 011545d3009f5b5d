// Package server exposes the pipeline over HTTP. It is a thin rendering
// surface: every handler delegates to the analyzer and alert engine and
// serializes their plain data outputs.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/spacesedan/tickerpulse/internal/alerts"
	"github.com/spacesedan/tickerpulse/internal/analyzer"
)

// Server wires the HTTP routes to the analyzer and alert engine.
type Server struct {
	analyzer    *analyzer.Analyzer
	engine      *alerts.Engine
	validate    *validator.Validate
	defaultDays int
	httpServer  *http.Server
}

// New builds a Server listening on addr.
func New(addr string, allowedOrigins []string, a *analyzer.Analyzer, engine *alerts.Engine, defaultDays int) *Server {
	s := &Server{
		analyzer:    a,
		engine:      engine,
		validate:    validator.New(),
		defaultDays: defaultDays,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/sentiment/{symbol}", s.handleSentiment)
		r.Post("/dashboard", s.handleDashboard)
		r.Get("/alerts", s.handleAlerts)
		r.Get("/market-status", s.handleMarketStatus)
		r.Get("/popular-stocks", s.handlePopularStocks)
	})

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops. A closed-server error is
// not reported.
func (s *Server) ListenAndServe() error {
	slog.Info("[Server] Listening", slog.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
