package ratelimiter_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagarde/pharmagarde/pkg/ratelimiter"
)

func TestLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(func() time.Time { return now }),
	)

	l, err := ratelimiter.New(store, ratelimiter.Config{Limit: 2, Window: time.Minute})
	require.NoError(t, err)

	for i := range 2 {
		res, err := l.Hit(ctx, "a@b.co")
		require.NoError(t, err)
		assert.True(t, res.Allowed(), "hit %d", i+1)
	}

	res, err := l.Hit(ctx, "a@b.co")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, now.Add(time.Minute), res.ResetAt)

	t.Run("other keys are independent", func(t *testing.T) {
		res, err := l.Hit(ctx, "c@d.co")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		now = now.Add(time.Minute)
		res, err := l.Hit(ctx, "a@b.co")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)
	})

	t.Run("reset clears the key", func(t *testing.T) {
		_, _ = l.Hit(ctx, "a@b.co")
		_, _ = l.Hit(ctx, "a@b.co")
		require.NoError(t, l.Reset(ctx, "a@b.co"))
		res, err := l.Hit(ctx, "a@b.co")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := ratelimiter.New(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), ratelimiter.Config{})
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestMemoryStoreSweepsExpiredWindows(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	var elapsed atomic.Int64
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(5*time.Millisecond),
		ratelimiter.WithClock(func() time.Time { return start.Add(time.Duration(elapsed.Load())) }),
	)
	defer store.Close()

	for i := range 1000 {
		_, _, err := store.Increment(ctx, fmt.Sprintf("user%d@example.com", i), time.Minute)
		require.NoError(t, err)
	}
	_, _, err := store.Increment(ctx, "late@example.com", 2*time.Hour)
	require.NoError(t, err)

	elapsed.Store(int64(time.Hour))

	assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)

	count, _, err := store.Increment(ctx, "late@example.com", 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "live windows survive the sweep")
}

func TestMemoryStoreCloseIsIdempotent(t *testing.T) {
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Millisecond))
	assert.NotPanics(t, func() {
		store.Close()
		store.Close()
	})
}
