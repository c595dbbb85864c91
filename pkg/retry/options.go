package retry

import (
	"log/slog"
	"time"
)

// Option configures a Retrier.
type Option func(*Retrier)

// WithMaxAttempts sets the total number of attempts, first one included.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("WithMaxAttempts: attempts must be >= 1")
	}
	return func(r *Retrier) { r.policy.MaxAttempts = n }
}

// WithBaseDelay sets the delay after the first failed attempt.
func WithBaseDelay(d time.Duration) Option {
	if d <= 0 {
		panic("WithBaseDelay: delay must be > 0")
	}
	return func(r *Retrier) { r.policy.BaseDelay = d }
}

// WithPolicy applies both bounds at once.
func WithPolicy(p Policy) Option {
	if p.MaxAttempts < 1 {
		panic("WithPolicy: attempts must be >= 1")
	}
	if p.BaseDelay <= 0 {
		panic("WithPolicy: delay must be > 0")
	}
	return func(r *Retrier) { r.policy = p }
}

// WithBackoff replaces the exponential schedule derived from the policy.
func WithBackoff(b BackoffStrategy) Option {
	if b == nil {
		panic("WithBackoff: nil strategy")
	}
	return func(r *Retrier) { r.backoff = b }
}

// WithSleep injects the suspension primitive used between attempts.
func WithSleep(fn SleepFunc) Option {
	if fn == nil {
		panic("WithSleep: nil sleep")
	}
	return func(r *Retrier) { r.sleep = fn }
}

// WithLogger logs every retried failure at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(r *Retrier) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithOnRetry registers a hook called before each backoff sleep.
func WithOnRetry(fn OnRetryFunc) Option {
	return func(r *Retrier) {
		if fn != nil {
			r.onRetry = append(r.onRetry, fn)
		}
	}
}

// WithRetryIf stops retrying as soon as pred reports false for a failure.
// Without it every failure is retried.
func WithRetryIf(pred func(error) bool) Option {
	return func(r *Retrier) { r.retryIf = pred }
}
