// Package ratelimit builds request limiters from the configured per-minute
// and per-hour budgets. The limiters gate collaborator-facing work; the
// configuration itself never throttles anything.
package ratelimit

import (
	"golang.org/x/time/rate"

	"github.com/finova-network/content-analyzer/internal/config"
)

// Limiter admits or rejects one unit of work.
type Limiter interface {
	Allow() bool
}

type limiterAdapter struct {
	limiter *rate.Limiter
}

func (l *limiterAdapter) Allow() bool {
	if l == nil || l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}

type openLimiter struct{}

func (openLimiter) Allow() bool { return true }

// PerMinute returns a token bucket admitting n requests per minute with a
// burst of n. Non-positive n disables limiting.
func PerMinute(n int) Limiter {
	return tokenBucket(n, 60)
}

// PerHour returns a token bucket admitting n requests per hour with a burst
// of n. Non-positive n disables limiting.
func PerHour(n int) Limiter {
	return tokenBucket(n, 3600)
}

// FromConfig derives both limiters from the store's rate-limit settings.
func FromConfig(cfg *config.Config) (minute, hour Limiter) {
	return PerMinute(cfg.RateLimitPerMinute), PerHour(cfg.RateLimitPerHour)
}

func tokenBucket(n, windowSeconds int) Limiter {
	if n <= 0 {
		return openLimiter{}
	}
	return &limiterAdapter{
		limiter: rate.NewLimiter(rate.Limit(float64(n)/float64(windowSeconds)), n),
	}
}
