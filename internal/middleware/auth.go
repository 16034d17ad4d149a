package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"

	"ticketassist/internal/config"
)

// TokenVerifier verifies raw ID tokens. Satisfied by *oidc.IDTokenVerifier.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

// AuthMiddleware verifies bearer ID tokens issued to the helpdesk app.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware discovers the OIDC issuer and builds a verifier for the
// configured client ID.
func NewAuthMiddleware(ctx context.Context, cfg *config.Config) (*AuthMiddleware, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}
	return NewAuthMiddlewareWithVerifier(provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID})), nil
}

// NewAuthMiddlewareWithVerifier creates the middleware around an existing verifier.
func NewAuthMiddlewareWithVerifier(v TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: v}
}

// RequireBearer rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireBearer(c fiber.Ctx) error {
	raw := extractBearerToken(c.Get(fiber.HeaderAuthorization))
	if raw == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	token, err := m.verifier.Verify(c.Context(), raw)
	if err != nil {
		slog.Warn("bearer token rejected", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid bearer token"})
	}

	c.Locals("subject", token.Subject)
	return c.Next()
}

// extractBearerToken returns the token of an "Authorization: Bearer <token>"
// header value, or "" if the header has another form.
func extractBearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
