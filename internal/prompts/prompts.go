// Package prompts builds the instructions sent to the text-generation service.
package prompts

import (
	"fmt"
	"strings"

	"ticketassist/internal/models"
)

const summarizePreambleES = `Eres un agente de soporte al cliente. Lee el siguiente ticket y escribe
primero un resumen de una o dos frases y después una respuesta breve y cordial
que el agente pueda enviar al cliente. No inventes datos que no aparezcan en el ticket.`

const summarizePreambleEN = `You are a customer support agent. Read the ticket below and write a one or
two sentence summary first, followed by a short, friendly reply the agent can
send to the customer. Do not invent facts that are not in the ticket.`

// BuildSummarizePrompt returns the preamble for language followed by the ticket.
func BuildSummarizePrompt(ticket, language string) string {
	preamble := summarizePreambleEN
	if language == "es" {
		preamble = summarizePreambleES
	}
	return fmt.Sprintf("%s\n\nTicket:\n%s", preamble, ticket)
}

// BuildSuggestPrompt lists the macro taxonomy and asks for exactly one macro
// name for the issue.
func BuildSuggestPrompt(issue string, taxonomy *models.MacroTaxonomy) string {
	var b strings.Builder

	b.WriteString("Eres un asistente de una mesa de ayuda. Elige la macro que mejor responde a la incidencia del cliente.\n")
	if taxonomy.IsEmpty() {
		b.WriteString("No hay un catálogo de macros disponible: propone un nombre corto de macro en formato Macro_Nombre.\n")
	} else {
		b.WriteString("\nMacros disponibles (nombre: palabras clave):\n")
		for _, m := range taxonomy.Macros {
			if len(m.Keywords) == 0 {
				fmt.Fprintf(&b, "- %s\n", m.Name)
				continue
			}
			fmt.Fprintf(&b, "- %s: %s\n", m.Name, strings.Join(m.Keywords, ", "))
		}
		b.WriteString("\nSi ninguna encaja, responde Macro_General.\n")
	}
	b.WriteString("Responde únicamente con el nombre de la macro, sin explicaciones.\n\n")
	fmt.Fprintf(&b, "Incidencia:\n%s", issue)

	return b.String()
}
