package generator

import (
	"context"
	"fmt"

	"ticketassist/internal/config"
)

// ResolveProvider picks the provider to use. An explicit GENERATOR_PROVIDER
// wins; otherwise the first provider with an API key is chosen, Gemini first.
func ResolveProvider(cfg *config.Config) (Provider, error) {
	switch Provider(cfg.GeneratorProvider) {
	case ProviderGemini, ProviderOpenAI, ProviderClaude:
		return Provider(cfg.GeneratorProvider), nil
	case "":
	default:
		return "", fmt.Errorf("unsupported GENERATOR_PROVIDER: %s (supported: gemini, openai, claude)", cfg.GeneratorProvider)
	}

	switch {
	case cfg.GeminiAPIKey != "":
		return ProviderGemini, nil
	case cfg.OpenAIAPIKey != "":
		return ProviderOpenAI, nil
	case cfg.AnthropicAPIKey != "":
		return ProviderClaude, nil
	}
	return "", ErrNotConfigured
}

// NewFromConfig creates the configured generator, rate limited when
// GENERATOR_RPS is set. Returns ErrNotConfigured when no provider has a key.
func NewFromConfig(ctx context.Context, cfg *config.Config) (Generator, error) {
	provider, err := ResolveProvider(cfg)
	if err != nil {
		return nil, err
	}

	var g Generator
	switch provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		g, err = NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		g = NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case ProviderClaude:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		g = NewClaude(cfg.AnthropicAPIKey, cfg.ClaudeModel)
	}

	return WithRateLimit(g, cfg.GeneratorRPS), nil
}
