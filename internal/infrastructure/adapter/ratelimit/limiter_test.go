package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	lim := NewMemoryLimiter(2, time.Second)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		allowed, retry, err := lim.Allow(ctx, "ip", now)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retry)
	}

	allowed, retry, err := lim.Allow(ctx, "ip", now.Add(300*time.Millisecond))
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 700*time.Millisecond, retry)

	// keys are independent
	allowed, _, err = lim.Allow(ctx, "other", now)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, err = lim.Allow(ctx, "ip", now.Add(time.Second))
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter_Cleanup(t *testing.T) {
	lim := NewMemoryLimiter(1, time.Second)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, _, _ = lim.Allow(context.Background(), "a", now)
	_, _, _ = lim.Allow(context.Background(), "b", now.Add(5*time.Second))

	lim.mu.Lock()
	defer lim.mu.Unlock()
	assert.Len(t, lim.entries, 1)
	assert.Contains(t, lim.entries, "b")
}

func TestRedisLimiter(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	lim := NewRedisLimiter(client, 2, 500*time.Millisecond, "test:")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _, err := lim.Allow(ctx, "ip", time.Now())
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, retry, err := lim.Allow(ctx, "ip", time.Now())
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retry, time.Duration(0))
	assert.True(t, s.Exists("test:ip"))

	s.FastForward(600 * time.Millisecond)
	allowed, _, err = lim.Allow(ctx, "ip", time.Now())
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_ServerDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	s.Close()

	_, _, err := NewRedisLimiter(client, 1, time.Second, "").Allow(context.Background(), "ip", time.Now())
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	lim, err := New(Config{Backend: BackendMemory, Limit: 5, Window: time.Minute}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryLimiter{}, lim)

	_, err = New(Config{Backend: BackendRedis, Limit: 5, Window: time.Minute}, nil)
	assert.Error(t, err)

	_, err = New(Config{Backend: "memcached", Limit: 5, Window: time.Minute}, nil)
	assert.Error(t, err)

	_, err = New(Config{Limit: 0, Window: time.Minute}, nil)
	assert.Error(t, err)
}
