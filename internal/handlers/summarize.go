package handlers

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"ticketassist/internal/config"
	"ticketassist/internal/models"
	"ticketassist/internal/suggest"
)

// SummarizeHandler serves POST /summarize.
type SummarizeHandler struct {
	resolver *suggest.Resolver
	cfg      *config.Config
}

// NewSummarizeHandler creates a new summarize handler.
func NewSummarizeHandler(resolver *suggest.Resolver, cfg *config.Config) *SummarizeHandler {
	return &SummarizeHandler{resolver: resolver, cfg: cfg}
}

// Summarize returns summary, tags, macro and table fields for a ticket.
// The body is not validated: a missing or malformed body is an empty ticket,
// and the response is always 200.
func (h *SummarizeHandler) Summarize(c fiber.Ctx) error {
	var body models.SummarizeRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			slog.Warn("ignoring malformed summarize body", "error", err)
		}
	}

	resp := h.resolver.Summarize(c.Context(), body.TicketText)

	c.Set(fiber.HeaderAccessControlAllowOrigin, h.cfg.AllowedOrigin)
	return c.JSON(resp)
}
