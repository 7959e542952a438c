package ui

import (
	"time"

	"golang.org/x/time/rate"
)

// FrameLimiter caps how often frames are presented.
type FrameLimiter struct {
	limiter *rate.Limiter
	now     func() time.Time
	sleep   func(time.Duration)
}

// NewFrameLimiter creates a limiter allowing at most fps frames per second.
// A non-positive fps disables the limit.
func NewFrameLimiter(fps int) *FrameLimiter {
	limit := rate.Inf
	if fps > 0 {
		limit = rate.Limit(fps)
	}
	return &FrameLimiter{
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Wait blocks until the next frame may be presented.
func (l *FrameLimiter) Wait() {
	now := l.now()
	if d := l.limiter.ReserveN(now, 1).DelayFrom(now); d > 0 {
		l.sleep(d)
	}
}
