package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Config describes a token bucket. Every RefillInterval, RefillRate tokens are
// added back, up to Capacity.
type Config struct {
	Capacity       int           `env:"CAPACITY" envDefault:"30"`
	RefillRate     int           `env:"REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"REFILL_INTERVAL" envDefault:"2s"`
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result reports the bucket state after a request.
type Result struct {
	Limit     int
	Remaining int
	Allowed   bool
	ResetAt   time.Time // next refill
}

// RetryAfter is how long a denied caller should wait.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Store keeps token counts per key.
type Store interface {
	// Take refills the bucket for key and removes n tokens if that many are
	// available. n == 0 only reports the state.
	Take(ctx context.Context, key string, n int, cfg Config) (*Result, error)
	Reset(ctx context.Context, key string) error
}

// Bucket applies one Config to any number of keys.
type Bucket struct {
	store  Store
	config Config
}

func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, config: cfg}, nil
}

// Allow takes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return b.store.Take(ctx, key, n, b.config)
}

// Status reports the state for key without taking tokens.
func (b *Bucket) Status(ctx context.Context, key string) (*Result, error) {
	return b.store.Take(ctx, key, 0, b.config)
}

func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}
