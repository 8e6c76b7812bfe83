package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(2, time.Minute, func() time.Time { return now })

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "buckets are per client")

	now = now.Add(time.Minute)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	limiter := newRateLimiter(1, time.Minute, func() time.Time { return now })

	limiter.Allow("10.0.0.1")
	now = now.Add(2 * time.Hour)
	limiter.cleanup()

	assert.Empty(t, limiter.clients)
	limiter.Stop()
	limiter.Stop()
}
