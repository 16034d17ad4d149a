package suggest

import "strings"

// DetectLanguage is a placeholder heuristic, not language detection: text
// with an accented vowel is tagged "es", anything else "en".
func DetectLanguage(text string) string {
	if strings.ContainsAny(text, "áéíóúÁÉÍÓÚ") {
		return "es"
	}
	return "en"
}
