package models

import "strings"

// Default field values used when no suggestion row matches a ticket.
const (
	DefaultForm         = "General"
	DefaultPriority     = "Normal"
	DefaultAdvisoryType = "No clasificado"
	DefaultAssignee     = "Sin asignar"
	DefaultLabel        = "Ticket sin clasificar"
	DefaultMacro        = ""
)

// SuggestionRow is one entry of the keyword-to-metadata table.
type SuggestionRow struct {
	Keywords     string   `json:"palabras_clave" yaml:"keywords"`
	Form         string   `json:"formulario" yaml:"form"`
	Priority     string   `json:"prioridad" yaml:"priority"`
	AdvisoryType string   `json:"tipo_asesoria" yaml:"advisory_type"`
	Assignee     string   `json:"dirigida_a" yaml:"assignee"`
	Label        string   `json:"titulo_ticket" yaml:"label"`
	Macro        string   `json:"macro" yaml:"macro"`
	Tags         []string `json:"tags" yaml:"tags"`
}

// KeywordList splits the comma-separated keyword field into trimmed,
// lower-cased keywords. Empty entries are dropped.
func (r SuggestionRow) KeywordList() []string {
	parts := strings.Split(r.Keywords, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		k := strings.ToLower(strings.TrimSpace(p))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// ParseTags splits a comma-separated tag field.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, p := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// MacroDefinition describes a macro and the keywords that should trigger it.
type MacroDefinition struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// MacroTaxonomy is the list of macros offered to the generator on /suggest.
type MacroTaxonomy struct {
	Macros []MacroDefinition `yaml:"macros"`
}

// IsEmpty returns true if the taxonomy has no macros.
func (t *MacroTaxonomy) IsEmpty() bool {
	return t == nil || len(t.Macros) == 0
}
