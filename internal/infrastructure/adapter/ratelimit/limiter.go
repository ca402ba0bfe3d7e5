package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Limiter counts hits per key in fixed windows
type Limiter interface {
	// Allow records a hit for key. When the hit is refused, retryAfter is the
	// time left until the window resets.
	Allow(ctx context.Context, key string, now time.Time) (allowed bool, retryAfter time.Duration, err error)
}

// Config selects and sizes a limiter
type Config struct {
	Backend string
	Limit   int
	Window  time.Duration
	Prefix  string
}

// New builds the limiter for cfg.Backend. client may be nil for the memory backend.
func New(cfg Config, client redis.UniversalClient) (Limiter, error) {
	if cfg.Limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", cfg.Limit)
	}
	if cfg.Window <= 0 {
		return nil, fmt.Errorf("rate limit window must be positive, got %s", cfg.Window)
	}

	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryLimiter(cfg.Limit, cfg.Window), nil
	case BackendRedis:
		if client == nil {
			return nil, fmt.Errorf("redis backend requires a redis client")
		}
		return NewRedisLimiter(client, cfg.Limit, cfg.Window, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown rate limit backend %q", cfg.Backend)
	}
}
