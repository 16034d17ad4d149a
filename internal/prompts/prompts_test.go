package prompts

import (
	"strings"
	"testing"

	"ticketassist/internal/models"
)

func TestBuildSummarizePrompt(t *testing.T) {
	es := BuildSummarizePrompt("Mi factura llegó mal", "es")
	if !strings.Contains(es, "agente de soporte") {
		t.Error("spanish prompt should use the spanish preamble")
	}
	if !strings.HasSuffix(es, "Mi factura llegó mal") {
		t.Error("prompt should end with the ticket text")
	}

	en := BuildSummarizePrompt("My invoice is wrong", "en")
	if !strings.Contains(en, "customer support agent") {
		t.Error("english prompt should use the english preamble")
	}
}

func TestBuildSuggestPrompt_WithTaxonomy(t *testing.T) {
	tax := &models.MacroTaxonomy{Macros: []models.MacroDefinition{
		{Name: "Macro_Facturacion", Keywords: []string{"factura", "cobro"}},
		{Name: "Macro_Saludo"},
	}}

	prompt := BuildSuggestPrompt("No me llegó la factura", tax)

	for _, want := range []string{
		"- Macro_Facturacion: factura, cobro",
		"- Macro_Saludo\n",
		"Macro_General",
		"Incidencia:\nNo me llegó la factura",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildSuggestPrompt_WithoutTaxonomy(t *testing.T) {
	prompt := BuildSuggestPrompt("Necesito ayuda", nil)
	if strings.Contains(prompt, "Macros disponibles") {
		t.Error("prompt without taxonomy should not list macros")
	}
	if !strings.Contains(prompt, "Macro_Nombre") {
		t.Error("prompt without taxonomy should describe the expected name format")
	}
}
