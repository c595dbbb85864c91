// Package retry re-invokes a fallible operation with exponential backoff.
//
// Attempts run strictly one after another. A success returns immediately; a
// failure that is not the last allowed attempt waits BaseDelay*2^(attempt-1)
// before the next try; the failure of the final attempt is returned to the
// caller unchanged. Classification of that failure is left to the caller (see
// package apperror).
//
// The only suspension point is the backoff sleep, which is injectable so tests
// can run without waiting in real time:
//
//	r := retry.New(
//		retry.WithMaxAttempts(3),
//		retry.WithBaseDelay(time.Second),
//	)
//	user, err := retry.Do(ctx, r, func(ctx context.Context) (*account.User, error) {
//		return provider.SignUp(ctx, email, password, account.RolePharmacist)
//	})
//
// The context doubles as the cancellation token: cancelling it during a
// backoff sleep aborts the remaining attempts. No timeout is applied to an
// individual attempt; an operation that never returns stalls the sequence.
package retry
