package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxTextLength bounds the ticket text accepted by validated endpoints.
const MaxTextLength = 50000

// ValidateTicketText checks that a required text field is present and not
// oversized. Returns false and a user-facing message when invalid.
func ValidateTicketText(field, text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return false, field + " is required"
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return false, field + " is too long"
	}
	return true, ""
}
