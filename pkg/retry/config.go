package retry

import "time"

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Policy bounds a retry sequence.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultPolicy returns three attempts starting at a one second delay.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, BaseDelay: DefaultBaseDelay}
}

// Config is the environment form of Policy.
type Config struct {
	MaxAttempts int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	BaseDelay   time.Duration `env:"RETRY_BASE_DELAY" envDefault:"1s"`
}

// Policy converts the config, falling back to defaults for invalid values.
func (c Config) Policy() Policy {
	p := DefaultPolicy()
	if c.MaxAttempts >= 1 {
		p.MaxAttempts = c.MaxAttempts
	}
	if c.BaseDelay > 0 {
		p.BaseDelay = c.BaseDelay
	}
	return p
}
