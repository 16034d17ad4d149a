package generator

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/time/rate"
)

// RateLimited waits for a token before each call to the wrapped generator.
// It never retries.
type RateLimited struct {
	next    Generator
	limiter *rate.Limiter
}

// WithRateLimit wraps g so at most rps calls per second reach the provider.
// A non-positive rps returns g unchanged.
func WithRateLimit(g Generator, rps float64) Generator {
	if g == nil || rps <= 0 {
		return g
	}
	burst := int(math.Ceil(rps))
	return &RateLimited{next: g, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (r *RateLimited) Generate(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}
	return r.next.Generate(ctx, prompt)
}

func (r *RateLimited) Name() string {
	return r.next.Name()
}
