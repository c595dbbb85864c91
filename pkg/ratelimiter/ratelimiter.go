// Package ratelimiter limits how often a key (an email address on sign-in)
// may be used within a fixed window. Counters live in a Store: in memory for
// a single instance, in Redis when several instances share the limit.
package ratelimiter

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidConfig = errors.New("ratelimiter: invalid config")

// Config bounds a key to Limit hits per Window.
type Config struct {
	Limit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"5"`
	Window time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"15m"`
}

func (c Config) validate() error {
	if c.Limit <= 0 || c.Window <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Store counts hits per key within a window.
type Store interface {
	// Increment records a hit and returns the count in the current window and
	// when that window ends.
	Increment(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
	// Reset clears the counter of key.
	Reset(ctx context.Context, key string) error
}

// Result describes the outcome of a hit.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// Limiter applies a Config over a Store.
type Limiter struct {
	store Store
	cfg   Config
}

func New(store Store, cfg Config) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Limiter{store: store, cfg: cfg}, nil
}

// Hit records one use of key.
func (l *Limiter) Hit(ctx context.Context, key string) (Result, error) {
	count, resetAt, err := l.store.Increment(ctx, key, l.cfg.Window)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: l.cfg.Limit, Remaining: l.cfg.Limit - count, ResetAt: resetAt}, nil
}

// Reset forgets previous hits of key, e.g. after a successful sign-in.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
