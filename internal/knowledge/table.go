// Package knowledge holds the keyword-to-suggestion table loaded once at
// startup and the loaders that fill it.
package knowledge

import (
	"strings"

	"ticketassist/internal/models"
)

// Table is an ordered, read-only set of suggestion rows.
// A nil *Table behaves as an empty table.
type Table struct {
	rows     []models.SuggestionRow
	keywords [][]string
}

// NewTable builds a table from rows, preserving their order. The rows are
// copied so later changes by the caller are not observed.
func NewTable(rows []models.SuggestionRow) *Table {
	t := &Table{
		rows:     make([]models.SuggestionRow, len(rows)),
		keywords: make([][]string, len(rows)),
	}
	copy(t.rows, rows)
	for i, r := range t.rows {
		t.keywords[i] = r.KeywordList()
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns a copy of the rows in table order.
func (t *Table) Rows() []models.SuggestionRow {
	if t == nil {
		return nil
	}
	rows := make([]models.SuggestionRow, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Lookup returns the first row with a keyword contained in text.
// Matching is case-insensitive; later rows are never consulted once one matches.
func (t *Table) Lookup(text string) (models.SuggestionRow, bool) {
	if t == nil || text == "" {
		return models.SuggestionRow{}, false
	}

	lowered := strings.ToLower(text)
	for i, keywords := range t.keywords {
		for _, k := range keywords {
			if strings.Contains(lowered, k) {
				return t.rows[i], true
			}
		}
	}
	return models.SuggestionRow{}, false
}

// Taxonomy derives a macro taxonomy from the rows. Rows sharing a macro
// name have their keywords merged in first-seen order.
func (t *Table) Taxonomy() *models.MacroTaxonomy {
	tax := &models.MacroTaxonomy{}
	if t == nil {
		return tax
	}

	index := make(map[string]int)
	for i, r := range t.rows {
		name := strings.TrimSpace(r.Macro)
		if name == "" {
			continue
		}
		pos, ok := index[name]
		if !ok {
			pos = len(tax.Macros)
			index[name] = pos
			tax.Macros = append(tax.Macros, models.MacroDefinition{Name: name})
		}
		tax.Macros[pos].Keywords = append(tax.Macros[pos].Keywords, t.keywords[i]...)
	}
	return tax
}
