// Package suggest resolves a ticket into the suggestion payloads rendered by
// the helpdesk UI.
package suggest

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"ticketassist/internal/generator"
	"ticketassist/internal/knowledge"
	"ticketassist/internal/metrics"
	"ticketassist/internal/models"
	"ticketassist/internal/prompts"
)

// Placeholder values used when an adapter is disabled.
const (
	PlaceholderSummary = "Resumen breve del ticket"
	PlaceholderMacro   = "Macro sugerida"
)

// Fallback values used when the generator fails.
const (
	FallbackSummary           = "No fue posible generar un resumen"
	FallbackSuggestedResponse = "No fue posible generar una respuesta sugerida"
	FallbackMacro             = "Macro_General"
)

// SummaryMaxRunes bounds the generated summary.
const SummaryMaxRunes = 200

var placeholderTags = []string{"billing", "warranty", "shipping", "account", "technical"}

// Resolver merges the table lookup and the generator into responses.
// Both dependencies are optional: a nil table disables the lookup and a nil
// generator disables generation.
type Resolver struct {
	table     *knowledge.Table
	generator generator.Generator
	taxonomy  *models.MacroTaxonomy
}

// NewResolver creates a resolver. When taxonomy is empty the macros of the
// table are offered to the generator instead.
func NewResolver(table *knowledge.Table, gen generator.Generator, taxonomy *models.MacroTaxonomy) *Resolver {
	if taxonomy.IsEmpty() && table != nil {
		taxonomy = table.Taxonomy()
	}
	return &Resolver{table: table, generator: gen, taxonomy: taxonomy}
}

// HasGenerator reports whether a text generator is configured.
func (r *Resolver) HasGenerator() bool {
	return r.generator != nil
}

// Table returns the suggestion table, nil when the lookup is disabled.
func (r *Resolver) Table() *knowledge.Table {
	return r.table
}

// Summarize builds the full /summarize payload. It never fails: missing
// matches and generator errors are replaced by fixed values.
func (r *Resolver) Summarize(ctx context.Context, ticket string) models.SummarizeResponse {
	language := DetectLanguage(ticket)

	resp := models.SummarizeResponse{
		Language:     language,
		Tags:         []string{},
		Macro:        models.DefaultMacro,
		Form:         models.DefaultForm,
		Priority:     models.DefaultPriority,
		AdvisoryType: models.DefaultAdvisoryType,
		Assignee:     models.DefaultAssignee,
		Label:        models.DefaultLabel,
	}

	if r.table == nil {
		resp.Tags = append([]string{}, placeholderTags[:3]...)
		resp.Macro = PlaceholderMacro
	} else if row, ok := r.table.Lookup(ticket); ok {
		metrics.RecordLookup(metrics.OutcomeMatched)
		applyRow(&resp, row)
	} else {
		metrics.RecordLookup(metrics.OutcomeUnmatched)
	}

	resp.Summary, resp.SuggestedResponse = r.generateSummary(ctx, ticket, language)
	return resp
}

// SuggestMacros asks the generator for the macro matching issue. Generator
// failures yield FallbackMacro; ErrNotConfigured is returned when there is
// no generator.
func (r *Resolver) SuggestMacros(ctx context.Context, issue string) ([]string, error) {
	if r.generator == nil {
		return nil, generator.ErrNotConfigured
	}

	text, err := r.generate(ctx, prompts.BuildSuggestPrompt(issue, r.taxonomy))
	if err != nil {
		slog.Error("macro suggestion failed, using fallback", "provider", r.generator.Name(), "error", err)
		return []string{FallbackMacro}, nil
	}
	return []string{text}, nil
}

func (r *Resolver) generateSummary(ctx context.Context, ticket, language string) (string, string) {
	if r.generator == nil {
		return PlaceholderSummary, ""
	}

	text, err := r.generate(ctx, prompts.BuildSummarizePrompt(ticket, language))
	if err != nil {
		slog.Error("summary generation failed, using fallback", "provider", r.generator.Name(), "error", err)
		return FallbackSummary, FallbackSuggestedResponse
	}
	return Truncate(text, SummaryMaxRunes), text
}

// generate calls the generator and returns cleaned, non-empty text.
func (r *Resolver) generate(ctx context.Context, prompt string) (string, error) {
	raw, err := r.generator.Generate(ctx, prompt)
	if err == nil {
		raw = generator.CleanOutput(raw)
		if raw == "" {
			err = generator.ErrEmptyResponse
		}
	}

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
		if errors.Is(err, context.Canceled) {
			outcome = metrics.OutcomeCanceled
		}
	}
	metrics.RecordGeneration(r.generator.Name(), outcome)

	return raw, err
}

func applyRow(resp *models.SummarizeResponse, row models.SuggestionRow) {
	resp.Macro = row.Macro
	if row.Tags != nil {
		resp.Tags = append([]string{}, row.Tags...)
	}
	resp.Form = orDefault(row.Form, models.DefaultForm)
	resp.Priority = orDefault(row.Priority, models.DefaultPriority)
	resp.AdvisoryType = orDefault(row.AdvisoryType, models.DefaultAdvisoryType)
	resp.Assignee = orDefault(row.Assignee, models.DefaultAssignee)
	resp.Label = orDefault(row.Label, models.DefaultLabel)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}
