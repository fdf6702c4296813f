package middleware

import (
	"golang.org/x/time/rate"

	"voice-commander/pkg/log"
)

// Middleware holds cross-cutting gin handlers.
type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. ratePerMin bounds the voice endpoint; the
// burst equals the per-minute budget so short spikes are not punished.
func New(l log.Logger, ratePerMin int) Middleware {
	if ratePerMin <= 0 {
		ratePerMin = 60
	}
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin),
	}
}
