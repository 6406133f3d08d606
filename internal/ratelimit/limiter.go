package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter is a token bucket guarding calls to the upstream flight-data
// provider.
type Limiter struct {
	limiter *rate.Limiter
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func New(config Config) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.BurstSize),
	}
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
