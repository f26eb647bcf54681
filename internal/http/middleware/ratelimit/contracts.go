package ratelimit

import "time"

// Limiter decides whether the caller behind key, the client address for the
// dispatch API, may proceed with a request.
type Limiter interface {
	Allow(key string) bool
}

// NopLimiter admits every caller. Wired in when rate limiting is disabled in
// the dispatch config.
type NopLimiter struct{}

// Allow always admits.
func (NopLimiter) Allow(string) bool { return true }

// Clock provides the current time; injected so bucket refill is testable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns the wall-clock time.
func (RealClock) Now() time.Time { return time.Now() }
