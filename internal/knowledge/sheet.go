package knowledge

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"ticketassist/internal/models"
)

var spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{20,}$`)

// headerAliases maps normalized header names to row fields.
var headerAliases = map[string]string{
	"palabras_clave": "keywords",
	"palabra_clave":  "keywords",
	"keywords":       "keywords",
	"keyword":        "keywords",
	"formulario":     "form",
	"form":           "form",
	"prioridad":      "priority",
	"priority":       "priority",
	"tipo_asesoria":  "advisory_type",
	"tipo_asesoría":  "advisory_type",
	"advisory_type":  "advisory_type",
	"dirigida_a":     "assignee",
	"assignee":       "assignee",
	"titulo_ticket":  "label",
	"título_ticket":  "label",
	"titulo":         "label",
	"label":          "label",
	"macro":          "macro",
	"nombre_macro":   "macro",
	"tags":           "tags",
	"etiquetas":      "tags",
}

// SheetLoader reads suggestion rows from a Google Sheets worksheet using a
// service account.
type SheetLoader struct {
	credentialsJSON []byte
	spreadsheetID   string
	worksheet       string
}

// NewSheetLoader creates a loader for the sheet referenced by sheetURL, which
// may also be a bare spreadsheet ID.
func NewSheetLoader(credentialsJSON, sheetURL, worksheet string) (*SheetLoader, error) {
	id, err := SpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}
	if credentialsJSON == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS is required for the sheet knowledge source")
	}
	if worksheet == "" {
		worksheet = "Sheet1"
	}
	return &SheetLoader{
		credentialsJSON: []byte(credentialsJSON),
		spreadsheetID:   id,
		worksheet:       worksheet,
	}, nil
}

// Load fetches all values of the worksheet and maps them to rows.
func (l *SheetLoader) Load(ctx context.Context) ([]models.SuggestionRow, error) {
	jwtConfig, err := google.JWTConfigFromJSON(l.credentialsJSON, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	resp, err := srv.Spreadsheets.Values.Get(l.spreadsheetID, l.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", l.worksheet, err)
	}

	return ParseSheetValues(resp.Values)
}

// SpreadsheetID extracts the spreadsheet ID from a Google Sheets URL or
// accepts a bare ID.
func SpreadsheetID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if m := spreadsheetURLPattern.FindStringSubmatch(ref); len(m) == 2 {
		return m[1], nil
	}
	if bareIDPattern.MatchString(ref) {
		return ref, nil
	}
	return "", ErrNoSpreadsheetID
}

// ParseSheetValues maps a header row plus data rows to suggestion rows.
// Unknown columns are ignored and fully blank rows are skipped.
func ParseSheetValues(values [][]interface{}) ([]models.SuggestionRow, error) {
	if len(values) == 0 {
		return nil, nil
	}

	columns := make(map[int]string)
	for i, h := range values[0] {
		if field, ok := headerAliases[normalizeHeader(fmt.Sprint(h))]; ok {
			columns[i] = field
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("worksheet header has no recognized columns")
	}

	rows := make([]models.SuggestionRow, 0, len(values)-1)
	for _, record := range values[1:] {
		var row models.SuggestionRow
		blank := true
		for i, cell := range record {
			field, ok := columns[i]
			if !ok {
				continue
			}
			value := strings.TrimSpace(fmt.Sprint(cell))
			if value != "" {
				blank = false
			}
			setField(&row, field, value)
		}
		if blank {
			continue
		}
		if row.Tags == nil {
			row.Tags = []string{}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	return h
}

func setField(row *models.SuggestionRow, field, value string) {
	switch field {
	case "keywords":
		row.Keywords = value
	case "form":
		row.Form = value
	case "priority":
		row.Priority = value
	case "advisory_type":
		row.AdvisoryType = value
	case "assignee":
		row.Assignee = value
	case "label":
		row.Label = value
	case "macro":
		row.Macro = value
	case "tags":
		row.Tags = models.ParseTags(value)
	}
}
