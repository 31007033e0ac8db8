package limiter

import (
	"golang.org/x/time/rate"
)

type Limiter interface {
	limiterSetup()
}

// New returns a limiter allowing perSecond calls per second, or nil when the
// limit is not positive.
func New(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(perSecond), perSecond)
}
