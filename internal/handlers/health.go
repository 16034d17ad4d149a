package handlers

import (
	"github.com/gofiber/fiber/v3"

	"ticketassist/internal/models"
)

// HealthHandler answers liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health always reports healthy; it does not depend on any upstream.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.JSON(models.HealthResponse{OK: true, Status: "healthy"})
}
