// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blogdeck/blogdeck/internal/config"
	"github.com/blogdeck/blogdeck/internal/services"
)

// Server is the REST + WebSocket settings API server.
type Server struct {
	httpServer  *http.Server
	broadcaster *EventBroadcaster
}

// New creates and wires up the API server. It does not start listening;
// call Run() for that.
func New(cfg *config.ServerConfig, blogs *services.BlogService) *Server {
	registry := NewClientRegistry()
	broadcaster := NewEventBroadcaster(registry)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           NewRouter(cfg, blogs, broadcaster, registry),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		broadcaster: broadcaster,
	}
}

// NewRouter builds the chi router with all middleware and routes.
func NewRouter(cfg *config.ServerConfig, blogs *services.BlogService, broadcaster *EventBroadcaster, registry *ClientRegistry) http.Handler {
	handlers := NewHandlers(broadcaster, blogs)

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Metrics)
	r.Use(CORS(cfg.AllowedOrigins))
	r.Use(MaxBodySize(maxBody))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/blogs", handlers.GetBlogs)
		r.Post("/blogs", handlers.CreateBlog)

		r.Route("/blogs/{id}", func(r chi.Router) {
			r.Get("/settings/discussion", handlers.GetDiscussionSettings)
			r.Put("/settings/discussion", handlers.UpdateDiscussionSettings)
			r.Get("/themes", handlers.GetThemes)
		})
	})

	r.Get("/ws", HandleWebSocket(registry, cfg.AllowedOrigins))
	r.Get("/healthz", handlers.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Run starts the event broadcaster goroutine and the HTTP server.
// Blocks until the server is shut down.
func (s *Server) Run(ctx context.Context) error {
	go s.broadcaster.Run(ctx)

	getLog().Info().Str("addr", s.httpServer.Addr).Msg("API server listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
