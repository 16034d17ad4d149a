// Package app wires configuration into the knowledge table, the generator
// and the resolver shared by every entry point.
package app

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"ticketassist/internal/config"
	"ticketassist/internal/db"
	"ticketassist/internal/generator"
	"ticketassist/internal/knowledge"
	"ticketassist/internal/suggest"
)

// SetupLogger installs the default slog logger: text in development, JSON otherwise.
func SetupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}

// NewResolver loads the suggestion table once, builds the generator and the
// taxonomy. Failures of any upstream degrade the resolver instead of
// aborting startup.
func NewResolver(ctx context.Context, cfg *config.Config) *suggest.Resolver {
	table := LoadTable(ctx, cfg)

	gen, err := generator.NewFromConfig(ctx, cfg)
	if err != nil {
		if errors.Is(err, generator.ErrNotConfigured) {
			slog.Info("text generation is disabled. Set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY to enable.")
		} else {
			slog.Error("failed to initialize text generation, continuing without it", "error", err)
		}
		gen = nil
	} else {
		slog.Info("text generation enabled", "provider", gen.Name())
	}

	taxonomy, err := config.LoadTaxonomy(cfg.MacroTaxonomyFile)
	if err != nil {
		slog.Warn("failed to load macro taxonomy, using table macros", "file", cfg.MacroTaxonomyFile, "error", err)
		taxonomy = nil
	}

	return suggest.NewResolver(table, gen, taxonomy)
}

// LoadTable loads the configured knowledge source. It returns nil when no
// source is configured and an empty table when the source fails.
func LoadTable(ctx context.Context, cfg *config.Config) *knowledge.Table {
	switch cfg.KnowledgeSource {
	case config.SourceSheet:
		loader, err := knowledge.NewSheetLoader(cfg.GoogleCredentials, cfg.GoogleSheetURL, cfg.WorksheetName)
		if err != nil {
			slog.Error("sheet knowledge source misconfigured, continuing with an empty table", "error", err)
			return knowledge.NewTable(nil)
		}
		return knowledge.LoadTable(ctx, loader)

	case config.SourcePostgres:
		database, err := openDatabase(ctx, cfg)
		if err != nil {
			slog.Error("postgres knowledge source unavailable, continuing with an empty table", "error", err)
			return knowledge.NewTable(nil)
		}
		// Rows are read once; the pool is not needed afterwards.
		table := knowledge.LoadTable(ctx, database)
		database.Close()
		return table

	case config.SourceNone:
		slog.Info("no knowledge source configured, using placeholder suggestions")
		return nil

	default:
		slog.Error("unknown KNOWLEDGE_SOURCE, continuing with an empty table", "source", cfg.KnowledgeSource)
		return knowledge.NewTable(nil)
	}
}

func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required for the postgres knowledge source")
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		database.Close()
		return nil, err
	}

	if cfg.SeedDevRows && cfg.IsDev() {
		if err := database.SeedDevRows(ctx); err != nil {
			slog.Warn("failed to seed development rows", "error", err)
		}
	}

	return database, nil
}
