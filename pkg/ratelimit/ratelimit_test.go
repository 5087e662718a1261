package ratelimit_test

import (
	"testing"
	"time"

	"github.com/ardani17/barber-sub001/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsWithinLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(0), 3, time.Minute)

	for i := 0; i < 3; i++ {
		result := limiter.Allow("login:1.2.3.4")
		assert.True(t, result.Allowed)
	}

	result := limiter.Allow("login:1.2.3.4")
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestLimiterIsolatesKeys(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(0), 1, time.Minute)

	assert.True(t, limiter.Allow("login:1.1.1.1").Allowed)
	assert.False(t, limiter.Allow("login:1.1.1.1").Allowed)

	// A different key has its own window
	assert.True(t, limiter.Allow("login:2.2.2.2").Allowed)
}

func TestLimiterWindowResets(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(0), 1, 20*time.Millisecond)

	assert.True(t, limiter.Allow("k").Allowed)
	assert.False(t, limiter.Allow("k").Allowed)

	time.Sleep(30 * time.Millisecond)

	assert.True(t, limiter.Allow("k").Allowed)
}

func TestRemainingCountsDown(t *testing.T) {
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(0), 5, time.Minute)

	assert.Equal(t, 4, limiter.Allow("k").Remaining)
	assert.Equal(t, 3, limiter.Allow("k").Remaining)
	assert.Equal(t, 2, limiter.Allow("k").Remaining)
}
