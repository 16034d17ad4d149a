package db

import (
	"context"
	"fmt"
	"strings"

	"ticketassist/internal/models"
)

// LoadSuggestionRows returns every suggestion row ordered by position.
func (d *DB) LoadSuggestionRows(ctx context.Context) ([]models.SuggestionRow, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT keywords, formulario, prioridad, tipo_asesoria, dirigida_a, titulo_ticket, macro, tags
		FROM suggestion_rows
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestion rows: %w", err)
	}
	defer rows.Close()

	var result []models.SuggestionRow
	for rows.Next() {
		var r models.SuggestionRow
		var tags string
		if err := rows.Scan(&r.Keywords, &r.Form, &r.Priority, &r.AdvisoryType, &r.Assignee, &r.Label, &r.Macro, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion row: %w", err)
		}
		r.Tags = models.ParseTags(tags)
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrNoRows
	}
	return result, nil
}

// Load implements knowledge.Loader.
func (d *DB) Load(ctx context.Context) ([]models.SuggestionRow, error) {
	return d.LoadSuggestionRows(ctx)
}

// InsertSuggestionRow appends a row after the current last position.
func (d *DB) InsertSuggestionRow(ctx context.Context, r models.SuggestionRow) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO suggestion_rows (position, keywords, formulario, prioridad, tipo_asesoria, dirigida_a, titulo_ticket, macro, tags)
		VALUES ((SELECT COALESCE(MAX(position), 0) + 1 FROM suggestion_rows), $1, $2, $3, $4, $5, $6, $7, $8)
	`, r.Keywords, r.Form, r.Priority, r.AdvisoryType, r.Assignee, r.Label, r.Macro, strings.Join(r.Tags, ", "))
	if err != nil {
		return fmt.Errorf("failed to insert suggestion row: %w", err)
	}
	return nil
}

// SeedDevRows inserts sample rows for development when the table is empty.
func (d *DB) SeedDevRows(ctx context.Context) error {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM suggestion_rows`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count suggestion rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []models.SuggestionRow{
		{Keywords: "factura, cobro, pago", Form: "Facturación", Priority: "Alta", AdvisoryType: "Administrativa", Assignee: "Equipo de Facturación", Label: "Problema de facturación", Macro: "Macro_Facturacion", Tags: []string{"billing"}},
		{Keywords: "garantía, garantia, devolución", Form: "Garantías", Priority: "Normal", AdvisoryType: "Comercial", Assignee: "Postventa", Label: "Consulta de garantía", Macro: "Macro_Garantia", Tags: []string{"warranty"}},
		{Keywords: "envío, envio, entrega, paquete", Form: "Logística", Priority: "Normal", AdvisoryType: "Operativa", Assignee: "Logística", Label: "Estado de envío", Macro: "Macro_Envio", Tags: []string{"shipping"}},
		{Keywords: "contraseña, password, acceso, login", Form: "Cuenta", Priority: "Alta", AdvisoryType: "Técnica", Assignee: "Soporte Técnico", Label: "Acceso a la cuenta", Macro: "Macro_Cuenta", Tags: []string{"account", "technical"}},
	}

	for _, r := range seed {
		if err := d.InsertSuggestionRow(ctx, r); err != nil {
			return fmt.Errorf("failed to seed row %q: %w", r.Macro, err)
		}
	}
	return nil
}
