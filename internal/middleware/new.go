package middleware

import (
	"art-historian/pkg/log"
)

// Config controls the rate limiter. A zero RequestsPerMin disables it.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
	Burst            int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst)
	}
	return mw
}
