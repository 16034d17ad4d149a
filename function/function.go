// Package function exposes the service as a Google Cloud Functions HTTP
// function named TicketAssist.
package function

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"ticketassist/internal/app"
	"ticketassist/internal/config"
	"ticketassist/internal/server"
)

var (
	mu      sync.Mutex
	handler http.HandlerFunc

	// buildHandler is replaced in tests.
	buildHandler = newHandler
)

func init() {
	functions.HTTP("TicketAssist", TicketAssist)
}

// TicketAssist serves the same routes as the standalone server. The app is
// built on the first successful invocation so cold starts load the table
// once; a failed build is retried on the next call.
func TicketAssist(w http.ResponseWriter, r *http.Request) {
	h, err := getHandler()
	if err != nil {
		slog.Error("failed to initialize function", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"Service Unavailable"}`))
		return
	}
	h(w, r)
}

func getHandler() (http.HandlerFunc, error) {
	mu.Lock()
	defer mu.Unlock()

	if handler != nil {
		return handler, nil
	}
	h, err := buildHandler(context.Background())
	if err != nil {
		return nil, err
	}
	handler = h
	return handler, nil
}

func newHandler(ctx context.Context) (http.HandlerFunc, error) {
	cfg := config.Load()
	app.SetupLogger(cfg)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, app.NewResolver(ctx, cfg)); err != nil {
		return nil, err
	}
	return adaptor.FiberApp(srv.App), nil
}
