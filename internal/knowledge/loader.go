package knowledge

import (
	"context"
	"errors"
	"log/slog"

	"ticketassist/internal/models"
)

// ErrNoSpreadsheetID is returned when the configured sheet reference has no spreadsheet ID.
var ErrNoSpreadsheetID = errors.New("no spreadsheet id in sheet url")

// Loader fetches suggestion rows from an external source.
type Loader interface {
	Load(ctx context.Context) ([]models.SuggestionRow, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]models.SuggestionRow, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) ([]models.SuggestionRow, error) {
	return f(ctx)
}

// LoadTable runs the loader once. A nil loader or a failed load yields an
// empty table; the failure is logged and not retried.
func LoadTable(ctx context.Context, loader Loader) *Table {
	if loader == nil {
		return NewTable(nil)
	}

	rows, err := loader.Load(ctx)
	if err != nil {
		slog.Error("failed to load suggestion table, continuing with an empty table", "error", err)
		return NewTable(nil)
	}

	slog.Info("suggestion table loaded", "rows", len(rows))
	return NewTable(rows)
}
