package handlers

import (
	"github.com/gofiber/fiber/v3"

	"ticketassist/internal/models"
	"ticketassist/internal/suggest"
)

// TableHandler exposes the loaded suggestion table for inspection.
type TableHandler struct {
	resolver *suggest.Resolver
}

// NewTableHandler creates a new table handler.
func NewTableHandler(resolver *suggest.Resolver) *TableHandler {
	return &TableHandler{resolver: resolver}
}

// List returns the rows in table order.
func (h *TableHandler) List(c fiber.Ctx) error {
	table := h.resolver.Table()
	rows := table.Rows()
	if rows == nil {
		rows = []models.SuggestionRow{}
	}
	return c.JSON(fiber.Map{
		"enabled": table != nil,
		"rows":    rows,
		"count":   table.Len(),
	})
}
