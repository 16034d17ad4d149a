package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticketassist/internal/handlers"
	"ticketassist/internal/metrics"
	"ticketassist/internal/middleware"
	"ticketassist/internal/suggest"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, resolver *suggest.Resolver) error {
	var auth *middleware.AuthMiddleware
	if s.Cfg.IsAuthEnabled() {
		var err error
		auth, err = middleware.NewAuthMiddleware(ctx, s.Cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize OIDC verifier: %w", err)
		}
	} else {
		slog.Info("bearer authentication is disabled. Set OIDC_ISSUER and OIDC_CLIENT_ID to enable.")
	}

	return s.registerRoutes(resolver, auth)
}

// RegisterRoutesWithAuth registers routes using an already built auth
// middleware; nil disables authentication.
func (s *Server) RegisterRoutesWithAuth(resolver *suggest.Resolver, auth *middleware.AuthMiddleware) error {
	return s.registerRoutes(resolver, auth)
}

func (s *Server) registerRoutes(resolver *suggest.Resolver, auth *middleware.AuthMiddleware) error {
	healthHandler := handlers.NewHealthHandler()
	summarizeHandler := handlers.NewSummarizeHandler(resolver, s.Cfg)
	suggestHandler := handlers.NewSuggestHandler(resolver)
	tableHandler := handlers.NewTableHandler(resolver)

	s.App.Get("/health", healthHandler.Health)

	if auth != nil {
		s.App.Post("/summarize", auth.RequireBearer, summarizeHandler.Summarize)
		s.App.Post("/suggest", auth.RequireBearer, suggestHandler.Suggest)
		s.App.Get("/table", auth.RequireBearer, tableHandler.List)
	} else {
		s.App.Post("/summarize", summarizeHandler.Summarize)
		s.App.Post("/suggest", suggestHandler.Suggest)
		s.App.Get("/table", tableHandler.List)
	}

	if s.Cfg.MetricsEnabled {
		metrics.Init(resolver.Table())
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	return nil
}
