package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ticketassist/internal/app"
	"ticketassist/internal/config"
	"ticketassist/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	app.SetupLogger(cfg)

	// Suggestion table is loaded once, before the server accepts requests
	resolver := app.NewResolver(ctx, cfg)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, resolver); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	slog.Info("server exited")
}
