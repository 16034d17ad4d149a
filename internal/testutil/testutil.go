// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"sync"

	"ticketassist/internal/knowledge"
	"ticketassist/internal/models"
)

// FakeGenerator returns a fixed text or error and records every prompt.
type FakeGenerator struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

// Generate records prompt and returns the configured result.
func (g *FakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if g.Err != nil {
		return "", g.Err
	}
	return g.Text, nil
}

// Name returns "fake".
func (g *FakeGenerator) Name() string {
	return "fake"
}

// Calls returns the number of Generate calls.
func (g *FakeGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// Prompts returns the prompts received so far.
func (g *FakeGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// FixtureRows returns a small billing/warranty/shipping table.
func FixtureRows() []models.SuggestionRow {
	return []models.SuggestionRow{
		{
			Keywords:     "factura, cobro",
			Form:         "Facturación",
			Priority:     "Alta",
			AdvisoryType: "Administrativa",
			Assignee:     "Equipo de Facturación",
			Label:        "Problema de facturación",
			Macro:        "Macro_Facturacion",
			Tags:         []string{"billing"},
		},
		{
			Keywords:     "garantía, devolución",
			Form:         "Garantías",
			Priority:     "Normal",
			AdvisoryType: "Comercial",
			Assignee:     "Postventa",
			Label:        "Consulta de garantía",
			Macro:        "Macro_Garantia",
			Tags:         []string{"warranty"},
		},
		{
			Keywords:     "envío, paquete, factura duplicada",
			Form:         "Logística",
			Priority:     "Normal",
			AdvisoryType: "Operativa",
			Assignee:     "Logística",
			Label:        "Estado de envío",
			Macro:        "Macro_Envio",
			Tags:         []string{"shipping"},
		},
	}
}

// FixtureTable returns a table built from FixtureRows.
func FixtureTable() *knowledge.Table {
	return knowledge.NewTable(FixtureRows())
}
