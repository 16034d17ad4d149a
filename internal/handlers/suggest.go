package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"ticketassist/internal/generator"
	"ticketassist/internal/models"
	"ticketassist/internal/suggest"
	"ticketassist/internal/validation"
)

// SuggestHandler serves POST /suggest.
type SuggestHandler struct {
	resolver *suggest.Resolver
}

// NewSuggestHandler creates a new suggest handler.
func NewSuggestHandler(resolver *suggest.Resolver) *SuggestHandler {
	return &SuggestHandler{resolver: resolver}
}

// Suggest returns the macro the generator picks from the taxonomy.
func (h *SuggestHandler) Suggest(c fiber.Ctx) error {
	var body models.SuggestRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if valid, msg := validation.ValidateTicketText("issue_description", body.IssueDescription); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	macros, err := h.resolver.SuggestMacros(c.Context(), body.IssueDescription)
	if err != nil {
		if errors.Is(err, generator.ErrNotConfigured) {
			slog.Error("suggest called without a text generation provider")
			return jsonError(c, fiber.StatusInternalServerError, "text generation is not configured")
		}
		return err
	}

	return c.JSON(models.SuggestResponse{
		Suggestions: models.MacroSuggestions{Macros: macros},
	})
}
