package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"

	"ticketassist/internal/config"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "ticketassist",
		ErrorHandler: newErrorHandler(cfg),
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${respHeader:X-Request-ID} ${status} - ${latency} ${method} ${path}\n",
	}))

	// CORS middleware answers preflights; /summarize also sets the origin header itself.
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(newLimiterConfig(cfg)))
	}

	return &Server{
		App: app,
		Cfg: cfg,
	}
}

// newLimiterConfig limits each IP to RateLimitMax requests per minute,
// sharing counters through Redis when REDIS_URL is set. /summarize always
// answers 200, so it is never limited.
func newLimiterConfig(cfg *config.Config) limiter.Config {
	lc := limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health" || c.Path() == "/summarize"
		},
		LimitReached: func(c fiber.Ctx) error {
			c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowedOrigin)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	}

	if cfg.RedisURL != "" {
		lc.Storage = redis.New(redis.Config{URL: cfg.RedisURL})
		slog.Info("rate limiter using redis storage")
	}

	return lc
}

// newErrorHandler renders every unhandled error as JSON without leaking
// details. Error responses carry the allowed origin like normal ones.
func newErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			slog.Error("unhandled request error", "path", c.Path(), "error", err)
		}

		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowedOrigin)
		return c.Status(code).JSON(fiber.Map{
			"error": message,
		})
	}
}

// Start starts the server on the configured port.
func (s *Server) Start() error {
	slog.Info("starting server", "addr", s.Cfg.ListenAddr())
	return s.App.Listen(s.Cfg.ListenAddr())
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
