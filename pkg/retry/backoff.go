package retry

import (
	"math"
	"math/rand/v2"
	"time"
)

// BackoffStrategy computes the delay that follows a failed attempt.
// Implementations should be safe for concurrent use.
type BackoffStrategy interface {
	// NextInterval returns the delay after the given failed attempt.
	// Attempt starts at 1.
	NextInterval(attempt int) time.Duration
}

// ExponentialBackoff grows the delay by Multiplier after every attempt.
// Zero MaxInterval means uncapped, zero JitterFactor means deterministic.
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

// NextInterval returns InitialInterval * Multiplier^(attempt-1), jittered and capped.
func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.InitialInterval
	if initial <= 0 {
		initial = DefaultBaseDelay
	}

	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))

	if e.JitterFactor > 0 {
		interval *= 1 + (rand.Float64()*2-1)*e.JitterFactor
	}

	if e.MaxInterval > 0 && interval > float64(e.MaxInterval) {
		interval = float64(e.MaxInterval)
	}
	if interval >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(interval)
}

// FixedBackoff waits the same interval after every attempt.
type FixedBackoff struct {
	Interval time.Duration
}

func (f FixedBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return f.Interval
}
