// Package generator wraps third-party text-generation services behind a
// single Generate call.
package generator

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Provider identifies a text-generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)

var (
	// ErrNotConfigured is returned when no provider has credentials.
	ErrNotConfigured = errors.New("no text generation provider configured")
	// ErrEmptyResponse is returned when the provider answers without text.
	ErrEmptyResponse = errors.New("empty response from text generation provider")
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

var fencePattern = regexp.MustCompile("```[a-zA-Z]*\n?|```")

// CleanOutput removes markdown code fences and surrounding whitespace.
func CleanOutput(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}
