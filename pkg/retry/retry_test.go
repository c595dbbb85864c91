package retry_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagarde/pharmagarde/pkg/retry"
)

// recordingSleep records requested delays without waiting.
type recordingSleep struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	return ctx.Err()
}

func (s *recordingSleep) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

func expectedDelays(base time.Duration, n int) []time.Duration {
	out := make([]time.Duration, 0, n)
	for i := range n {
		out = append(out, base*time.Duration(1<<i))
	}
	return out
}

func TestDo(t *testing.T) {
	t.Parallel()

	t.Run("success on first attempt incurs no delay", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{1, 2, 3, 5} {
			s := &recordingSleep{}
			r := retry.New(retry.WithMaxAttempts(n), retry.WithSleep(s.sleep))

			calls := 0
			got, err := retry.Do(context.Background(), r, func(context.Context) (string, error) {
				calls++
				return "ok", nil
			})

			require.NoError(t, err)
			assert.Equal(t, "ok", got)
			assert.Equal(t, 1, calls)
			assert.Empty(t, s.recorded())
		}
	})

	t.Run("success on last attempt after doubling delays", func(t *testing.T) {
		t.Parallel()
		base := 100 * time.Millisecond
		for n := 1; n <= 6; n++ {
			t.Run(fmt.Sprintf("attempts=%d", n), func(t *testing.T) {
				s := &recordingSleep{}
				r := retry.New(
					retry.WithMaxAttempts(n),
					retry.WithBaseDelay(base),
					retry.WithSleep(s.sleep),
				)

				calls := 0
				got, err := retry.Do(context.Background(), r, func(context.Context) (int, error) {
					calls++
					if calls < n {
						return 0, errors.New("transient")
					}
					return 42, nil
				})

				require.NoError(t, err)
				assert.Equal(t, 42, got)
				assert.Equal(t, n, calls)
				assert.Equal(t, expectedDelays(base, n-1), s.recorded())
			})
		}
	})

	t.Run("exhaustion returns the last error unchanged", func(t *testing.T) {
		t.Parallel()
		s := &recordingSleep{}
		r := retry.New(
			retry.WithMaxAttempts(4),
			retry.WithBaseDelay(time.Second),
			retry.WithSleep(s.sleep),
		)

		var errs []error
		_, err := retry.Do(context.Background(), r, func(context.Context) (struct{}, error) {
			e := fmt.Errorf("attempt %d", len(errs)+1)
			errs = append(errs, e)
			return struct{}{}, e
		})

		require.Len(t, errs, 4)
		assert.Same(t, errs[3], err)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, s.recorded())
	})

	t.Run("single attempt never sleeps", func(t *testing.T) {
		t.Parallel()
		s := &recordingSleep{}
		r := retry.New(retry.WithMaxAttempts(1), retry.WithSleep(s.sleep))
		sentinel := errors.New("nope")

		err := r.Run(context.Background(), func(context.Context) error { return sentinel })

		assert.Same(t, sentinel, err)
		assert.Empty(t, s.recorded())
	})

	t.Run("cancellation during backoff aborts", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		sentinel := errors.New("down")

		calls := 0
		r := retry.New(
			retry.WithMaxAttempts(5),
			retry.WithSleep(func(ctx context.Context, _ time.Duration) error {
				cancel()
				return ctx.Err()
			}),
		)

		err := r.Run(ctx, func(context.Context) error {
			calls++
			return sentinel
		})

		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, retry.ErrAborted)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("on retry hook sees every retried failure", func(t *testing.T) {
		t.Parallel()
		s := &recordingSleep{}
		var attempts []int
		r := retry.New(
			retry.WithMaxAttempts(3),
			retry.WithSleep(s.sleep),
			retry.WithOnRetry(func(_ context.Context, attempt int, _ time.Duration, _ error) {
				attempts = append(attempts, attempt)
			}),
		)

		_ = r.Run(context.Background(), func(context.Context) error { return errors.New("x") })

		assert.Equal(t, []int{1, 2}, attempts)
	})

	t.Run("default policy", func(t *testing.T) {
		t.Parallel()
		s := &recordingSleep{}
		r := retry.New(retry.WithSleep(s.sleep))

		_ = r.Run(context.Background(), func(context.Context) error { return errors.New("x") })

		assert.Equal(t, retry.DefaultPolicy(), r.Policy())
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, s.recorded())
	})
}

func TestWithRetry(t *testing.T) {
	t.Parallel()
	s := &recordingSleep{}
	calls := 0

	got, err := retry.WithRetry(context.Background(), func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("first")
		}
		return "second", nil
	}, retry.WithSleep(s.sleep), retry.WithBaseDelay(10*time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, "second", got)
	assert.Equal(t, []time.Duration{10 * time.Millisecond}, s.recorded())
}

func TestOptionsPanicOnInvalidValues(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { retry.WithMaxAttempts(0) })
	assert.Panics(t, func() { retry.WithBaseDelay(0) })
	assert.Panics(t, func() { retry.WithPolicy(retry.Policy{MaxAttempts: 1}) })
	assert.Panics(t, func() { retry.WithSleep(nil) })
	assert.Panics(t, func() { retry.WithBackoff(nil) })
}

func TestDefaultSleepHonorsContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := retry.New(retry.WithMaxAttempts(2), retry.WithBaseDelay(time.Hour))
	start := time.Now()
	err := r.Run(ctx, func(context.Context) error { return errors.New("x") })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestConfigPolicy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, retry.Policy{MaxAttempts: 5, BaseDelay: 2 * time.Second},
		retry.Config{MaxAttempts: 5, BaseDelay: 2 * time.Second}.Policy())
	assert.Equal(t, retry.DefaultPolicy(), retry.Config{}.Policy())
}

func TestRetryIfStopsOnRejectedFailure(t *testing.T) {
	s := &recordingSleep{}
	permanent := errors.New("permanent")
	transient := errors.New("transient")

	calls := 0
	r := retry.New(
		retry.WithMaxAttempts(5),
		retry.WithSleep(s.sleep),
		retry.WithRetryIf(func(err error) bool { return !errors.Is(err, permanent) }),
	)
	err := r.Run(context.Background(), func(context.Context) error {
		calls++
		if calls == 1 {
			return transient
		}
		return permanent
	})

	assert.Same(t, permanent, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, s.recorded(), 1)
}
