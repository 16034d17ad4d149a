package suggest

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"ticketassist/internal/generator"
	"ticketassist/internal/knowledge"
	"ticketassist/internal/models"
	"ticketassist/internal/testutil"
)

func TestSummarize_Matched(t *testing.T) {
	gen := &testutil.FakeGenerator{Text: "El cliente reporta un cobro incorrecto."}
	r := NewResolver(testutil.FixtureTable(), gen, nil)

	resp := r.Summarize(context.Background(), "Mi FACTURA llegó mal")

	if resp.Macro != "Macro_Facturacion" {
		t.Errorf("Macro = %q, want Macro_Facturacion", resp.Macro)
	}
	if resp.Form != "Facturación" || resp.Priority != "Alta" {
		t.Errorf("unexpected classification: %+v", resp)
	}
	if !reflect.DeepEqual(resp.Tags, []string{"billing"}) {
		t.Errorf("Tags = %v, want [billing]", resp.Tags)
	}
	if resp.Language != "es" {
		t.Errorf("Language = %q, want es", resp.Language)
	}
	if resp.Summary != "El cliente reporta un cobro incorrecto." {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if resp.SuggestedResponse != resp.Summary {
		t.Errorf("SuggestedResponse = %q, want generated text", resp.SuggestedResponse)
	}
	if gen.Calls() != 1 {
		t.Errorf("generator called %d times, want 1", gen.Calls())
	}
}

func TestSummarize_FirstMatchWins(t *testing.T) {
	r := NewResolver(testutil.FixtureTable(), nil, nil)

	// "factura duplicada" also matches the shipping row, which comes later.
	resp := r.Summarize(context.Background(), "Recibí una factura duplicada")
	if resp.Macro != "Macro_Facturacion" {
		t.Errorf("Macro = %q, want Macro_Facturacion", resp.Macro)
	}
}

func TestSummarize_Unmatched(t *testing.T) {
	r := NewResolver(testutil.FixtureTable(), nil, nil)

	resp := r.Summarize(context.Background(), "No puedo iniciar sesión")

	want := models.SummarizeResponse{
		Summary:           PlaceholderSummary,
		Tags:              []string{},
		Macro:             models.DefaultMacro,
		Language:          "es",
		SuggestedResponse: "",
		Form:              models.DefaultForm,
		Priority:          models.DefaultPriority,
		AdvisoryType:      models.DefaultAdvisoryType,
		Assignee:          models.DefaultAssignee,
		Label:             models.DefaultLabel,
	}
	if !reflect.DeepEqual(resp, want) {
		t.Errorf("Summarize() = %+v, want %+v", resp, want)
	}
}

func TestSummarize_EmptyRowFieldsUseDefaults(t *testing.T) {
	table := knowledge.NewTable([]models.SuggestionRow{
		{Keywords: "garantía", Macro: "Macro_Garantia"},
	})
	r := NewResolver(table, nil, nil)

	resp := r.Summarize(context.Background(), "Mi garantía venció")
	if resp.Macro != "Macro_Garantia" {
		t.Errorf("Macro = %q", resp.Macro)
	}
	if resp.Form != models.DefaultForm || resp.Priority != models.DefaultPriority ||
		resp.Assignee != models.DefaultAssignee || resp.Label != models.DefaultLabel {
		t.Errorf("empty row fields should fall back to defaults: %+v", resp)
	}
	if resp.Tags == nil || len(resp.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty slice", resp.Tags)
	}
}

func TestSummarize_PlaceholderMode(t *testing.T) {
	r := NewResolver(nil, nil, nil)

	resp := r.Summarize(context.Background(), "anything")
	if resp.Macro != PlaceholderMacro {
		t.Errorf("Macro = %q, want %q", resp.Macro, PlaceholderMacro)
	}
	if !reflect.DeepEqual(resp.Tags, []string{"billing", "warranty", "shipping"}) {
		t.Errorf("Tags = %v", resp.Tags)
	}
	if resp.Summary != PlaceholderSummary {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if resp.Language != "en" {
		t.Errorf("Language = %q, want en", resp.Language)
	}
}

func TestSummarize_GeneratorFailure(t *testing.T) {
	gen := &testutil.FakeGenerator{Err: errors.New("quota exceeded")}
	r := NewResolver(testutil.FixtureTable(), gen, nil)

	resp := r.Summarize(context.Background(), "Problema con el paquete del envío")
	if resp.Summary != FallbackSummary {
		t.Errorf("Summary = %q, want %q", resp.Summary, FallbackSummary)
	}
	if resp.SuggestedResponse != FallbackSuggestedResponse {
		t.Errorf("SuggestedResponse = %q", resp.SuggestedResponse)
	}
	if resp.Macro != "Macro_Envio" {
		t.Errorf("lookup should still apply on generator failure, Macro = %q", resp.Macro)
	}
}

func TestSummarize_EmptyGeneration(t *testing.T) {
	gen := &testutil.FakeGenerator{Text: "```\n```"}
	r := NewResolver(nil, gen, nil)

	resp := r.Summarize(context.Background(), "ticket")
	if resp.Summary != FallbackSummary {
		t.Errorf("Summary = %q, want fallback for empty output", resp.Summary)
	}
}

func TestSummarize_TruncatesSummary(t *testing.T) {
	long := strings.Repeat("ñ", SummaryMaxRunes+50)
	gen := &testutil.FakeGenerator{Text: long}
	r := NewResolver(nil, gen, nil)

	resp := r.Summarize(context.Background(), "ticket")
	if n := len([]rune(resp.Summary)); n != SummaryMaxRunes {
		t.Errorf("summary has %d runes, want %d", n, SummaryMaxRunes)
	}
	if resp.SuggestedResponse != long {
		t.Error("suggested response should keep the full generated text")
	}
}

func TestSuggestMacros(t *testing.T) {
	t.Run("no generator", func(t *testing.T) {
		r := NewResolver(testutil.FixtureTable(), nil, nil)
		if _, err := r.SuggestMacros(context.Background(), "issue"); !errors.Is(err, generator.ErrNotConfigured) {
			t.Errorf("error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("generated macro", func(t *testing.T) {
		gen := &testutil.FakeGenerator{Text: "```\nMacro_Garantia\n```"}
		r := NewResolver(testutil.FixtureTable(), gen, nil)

		macros, err := r.SuggestMacros(context.Background(), "Quiero devolver el producto")
		if err != nil {
			t.Fatalf("SuggestMacros() error = %v", err)
		}
		if !reflect.DeepEqual(macros, []string{"Macro_Garantia"}) {
			t.Errorf("macros = %v", macros)
		}

		prompt := gen.Prompts()[0]
		if !strings.Contains(prompt, "Macro_Facturacion: factura, cobro") {
			t.Errorf("prompt should list the table macros:\n%s", prompt)
		}
		if !strings.HasSuffix(prompt, "Quiero devolver el producto") {
			t.Error("prompt should end with the issue")
		}
	})

	t.Run("explicit taxonomy", func(t *testing.T) {
		gen := &testutil.FakeGenerator{Text: "Macro_Soporte"}
		tax := &models.MacroTaxonomy{Macros: []models.MacroDefinition{{Name: "Macro_Soporte", Keywords: []string{"error"}}}}
		r := NewResolver(testutil.FixtureTable(), gen, tax)

		if _, err := r.SuggestMacros(context.Background(), "error 500"); err != nil {
			t.Fatal(err)
		}
		prompt := gen.Prompts()[0]
		if !strings.Contains(prompt, "Macro_Soporte: error") || strings.Contains(prompt, "Macro_Facturacion") {
			t.Errorf("prompt should use the configured taxonomy only:\n%s", prompt)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		gen := &testutil.FakeGenerator{Err: context.DeadlineExceeded}
		r := NewResolver(nil, gen, nil)

		macros, err := r.SuggestMacros(context.Background(), "issue")
		if err != nil {
			t.Fatalf("SuggestMacros() error = %v", err)
		}
		if !reflect.DeepEqual(macros, []string{FallbackMacro}) {
			t.Errorf("macros = %v, want [%s]", macros, FallbackMacro)
		}
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hola", 10, "hola"},
		{"hola mundo", 5, "hola"},
		{"áéíóú", 3, "áéí"},
		{"", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
