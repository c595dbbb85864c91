package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// SleepFunc suspends for d or until ctx is done, returning ctx.Err() in the latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// OnRetryFunc observes a failed attempt that is about to be retried.
type OnRetryFunc func(ctx context.Context, attempt int, delay time.Duration, err error)

// Retrier runs operations under a retry policy.
// It holds no per-call state and is safe for concurrent use.
type Retrier struct {
	policy  Policy
	backoff BackoffStrategy
	sleep   SleepFunc
	onRetry []OnRetryFunc
	retryIf func(error) bool
	logger  *slog.Logger
}

// New creates a Retrier with the default policy unless overridden.
func New(opts ...Option) *Retrier {
	r := &Retrier{policy: DefaultPolicy()}
	for _, opt := range opts {
		opt(r)
	}
	if r.backoff == nil {
		r.backoff = ExponentialBackoff{InitialInterval: r.policy.BaseDelay, Multiplier: 2}
	}
	if r.sleep == nil {
		r.sleep = sleepWithContext
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	return r
}

// Policy returns the bounds the retrier was built with.
func (r *Retrier) Policy() Policy {
	return r.policy
}

// Do runs op until it succeeds or the attempts are exhausted.
// The error of the final attempt is returned as is, as is a failure the
// WithRetryIf predicate rejects.
func Do[T any](ctx context.Context, r *Retrier, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if attempt >= r.policy.MaxAttempts || (r.retryIf != nil && !r.retryIf(err)) {
			return zero, err
		}

		delay := r.backoff.NextInterval(attempt)
		r.logger.DebugContext(ctx, "operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.policy.MaxAttempts),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)
		for _, fn := range r.onRetry {
			fn(ctx, attempt, delay, err)
		}

		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			return zero, errors.Join(ErrAborted, sleepErr, err)
		}
	}
}

// Run is Do for operations without a result.
func (r *Retrier) Run(ctx context.Context, op func(ctx context.Context) error) error {
	_, err := Do(ctx, r, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// WithRetry runs op under a one-off retrier.
func WithRetry[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	return Do(ctx, New(opts...), op)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
