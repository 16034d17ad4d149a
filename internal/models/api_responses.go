package models

// SummarizeRequest is the body accepted by POST /summarize.
type SummarizeRequest struct {
	TicketText string `json:"ticket_text"`
}

// SummarizeResponse is the flat payload the helpdesk UI renders. Key names are
// fixed by the UI contract.
type SummarizeResponse struct {
	Summary           string   `json:"summary"`
	Tags              []string `json:"tags"`
	Macro             string   `json:"macro"`
	Language          string   `json:"language"`
	SuggestedResponse string   `json:"suggested_response"`
	Form              string   `json:"formulario"`
	Priority          string   `json:"prioridad"`
	AdvisoryType      string   `json:"tipo_asesoria"`
	Assignee          string   `json:"dirigida_a"`
	Label             string   `json:"titulo_ticket"`
}

// SuggestRequest is the body accepted by POST /suggest.
type SuggestRequest struct {
	IssueDescription string `json:"issue_description"`
}

// MacroSuggestions holds candidate macro names.
type MacroSuggestions struct {
	Macros []string `json:"macros"`
}

// SuggestResponse is returned by POST /suggest.
type SuggestResponse struct {
	Suggestions MacroSuggestions `json:"suggestions"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}
