// Package redis connects to Redis with environment-driven settings, retrying
// the initial ping with backoff through package retry.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pharmagarde/pharmagarde/pkg/retry"
)

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"` // empty disables redis
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// Connect parses the URL and pings the server until it answers or the
// attempts run out.
func Connect(ctx context.Context, cfg Config, opts ...retry.Option) (*redis.Client, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	connOpts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	interval := cfg.RetryInterval
	if interval <= 0 {
		interval = time.Second
	}
	r := retry.New(append([]retry.Option{
		retry.WithMaxAttempts(max(cfg.RetryAttempts, 1)),
		retry.WithBaseDelay(interval),
	}, opts...)...)

	client, err := retry.Do(ctx, r, func(ctx context.Context) (*redis.Client, error) {
		client := redis.NewClient(connOpts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, err
		}
		return client, nil
	})
	if err != nil {
		return nil, errors.Join(ErrRedisNotReady, err)
	}
	return client, nil
}

// Healthcheck returns a readiness probe pinging the server.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
