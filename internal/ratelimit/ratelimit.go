// Package ratelimit gates analysis requests with a single process-wide token bucket.
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultCapacity = 100
	DefaultWindow   = 60 * time.Second
)

// Limiter hands out at most Capacity permits per Window. The bucket starts full
// and refills continuously. State is in-memory and resets with the process.
type Limiter struct {
	bucket   *rate.Limiter
	capacity int
	window   time.Duration
	now      func() time.Time
}

type Option func(*Limiter)

func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(capacity int, window time.Duration, opts ...Option) *Limiter {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if window <= 0 {
		window = DefaultWindow
	}
	l := &Limiter{
		capacity: capacity,
		window:   window,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.bucket = rate.NewLimiter(rate.Every(window/time.Duration(capacity)), capacity)
	return l
}

// Allow consumes one permit if available.
func (l *Limiter) Allow() bool {
	return l.bucket.AllowN(l.now(), 1)
}

// Remaining reports the whole permits currently available.
func (l *Limiter) Remaining() int {
	tokens := l.bucket.TokensAt(l.now())
	if tokens < 0 {
		return 0
	}
	return int(tokens)
}

func (l *Limiter) Capacity() int {
	return l.capacity
}

func (l *Limiter) Window() time.Duration {
	return l.window
}
