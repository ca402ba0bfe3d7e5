package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now), time.Duration(0))

	ctx, cancel := p.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}

func TestManualTimeProvider(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := NewManualTimeProvider(start)

	assert.Equal(t, start, p.Now())
	p.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), p.Now())
	assert.Equal(t, 90*time.Minute, p.Since(start))
}
