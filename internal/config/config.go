package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Knowledge sources.
const (
	SourceNone     = "none"
	SourceSheet    = "sheet"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	Port          string
	AllowedOrigin string // env: ALLOWED_ORIGIN, default: "*"

	// Knowledge source
	KnowledgeSource   string // "sheet", "postgres" or "none"
	GoogleCredentials string // service-account JSON
	GoogleSheetURL    string
	WorksheetName     string
	DatabaseURL       string
	SeedDevRows       bool

	// Generator
	GeneratorProvider string // "gemini", "openai", "claude"; empty picks the first configured key
	GeminiAPIKey      string
	GeminiModel       string
	OpenAIAPIKey      string
	OpenAIModel       string
	AnthropicAPIKey   string
	ClaudeModel       string
	GeneratorRPS      float64 // 0 disables outbound rate limiting

	// Macro taxonomy YAML used by /suggest
	MacroTaxonomyFile string

	// Inbound rate limiting
	RateLimitMax int    // requests per minute per IP, 0 disables
	RedisURL     string // limiter storage, in-memory when empty

	// OIDC bearer-token verification for POST routes
	OIDCIssuer   string
	OIDCClientID string

	// Metrics
	MetricsEnabled bool
}

var v = newViper()

// newViper reads an optional .env file from the working directory. Real
// environment variables take precedence over the file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read .env file", "error", err)
		}
	}
	return v
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	cfg := &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "5000"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "*"),
		KnowledgeSource:   strings.ToLower(getEnv("KNOWLEDGE_SOURCE", "")),
		GoogleCredentials: getEnv("GOOGLE_CREDENTIALS", ""),
		GoogleSheetURL:    getEnv("GOOGLE_SHEET_URL", ""),
		WorksheetName:     getEnv("WORKSHEET_NAME", "Sheet1"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		SeedDevRows:       getEnv("SEED_DEV_ROWS", "") != "",

		GeneratorProvider: strings.ToLower(getEnv("GENERATOR_PROVIDER", "")),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AnthropicAPIKey:   getEnv("ANTHROPIC_API_KEY", ""),
		ClaudeModel:       getEnv("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		GeneratorRPS:      getEnvFloat("GENERATOR_RPS", 0),

		MacroTaxonomyFile: getEnv("MACRO_TAXONOMY_FILE", "macros.yaml"),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),

		OIDCIssuer:   getEnv("OIDC_ISSUER", ""),
		OIDCClientID: getEnv("OIDC_CLIENT_ID", ""),

		MetricsEnabled: getEnv("METRICS_ENABLED", "true") != "false",
	}

	if cfg.KnowledgeSource == "" {
		cfg.KnowledgeSource = SourceNone
		if cfg.GoogleSheetURL != "" {
			cfg.KnowledgeSource = SourceSheet
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return f
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// IsAuthEnabled returns true if bearer tokens must be verified against an OIDC issuer.
func (c *Config) IsAuthEnabled() bool {
	return c.OIDCIssuer != "" && c.OIDCClientID != ""
}
