package limiter

import (
	"context"
	"sort"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter delays callers to keep request rate under a limit.
type RateLimiter interface {
	Wait(context.Context) error
	Limit() rate.Limit
}

// Per returns rate.Limit allowing eventCount events per duration.
func Per(eventCount int, duration time.Duration) rate.Limit {
	return rate.Every(duration / time.Duration(eventCount))
}

// Multi combines limiters into a single RateLimiter which waits for all of them,
// most restrictive first.
func Multi(limiters ...RateLimiter) *MultiLimiter {
	byLimit := func(i, j int) bool {
		return limiters[i].Limit() < limiters[j].Limit()
	}
	sort.Slice(limiters, byLimit)

	return &MultiLimiter{limiters: limiters}
}

// MultiLimiter is RateLimiter composed of several underlying limiters.
type MultiLimiter struct {
	limiters []RateLimiter
}

// Wait blocks until every underlying limiter permits an event or ctx is cancelled.
func (l *MultiLimiter) Wait(ctx context.Context) error {
	for _, limiter := range l.limiters {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Limit returns the most restrictive underlying limit.
func (l *MultiLimiter) Limit() rate.Limit {
	return l.limiters[0].Limit()
}
