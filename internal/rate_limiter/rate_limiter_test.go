package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 3,
			TimeFrame:            time.Minute,
			Enabled:              true,
		}, nil)

		for i := 0; i < 3; i++ {
			allowed, _ := rl.Allow("10.0.0.1")
			assert.True(t, allowed)
		}
	})

	t.Run("rejects requests over the limit with retry duration", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            time.Minute,
			Enabled:              true,
		}, nil)

		allowed, _ := rl.Allow("10.0.0.1")
		assert.True(t, allowed)

		allowed, retryAfter := rl.Allow("10.0.0.1")
		assert.False(t, allowed)
		assert.Greater(t, retryAfter, time.Duration(0))
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            time.Minute,
			Enabled:              true,
		}, nil)

		allowed, _ := rl.Allow("10.0.0.1")
		assert.True(t, allowed)

		allowed, _ = rl.Allow("10.0.0.2")
		assert.True(t, allowed)
	})

	t.Run("resets after the window elapses", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            10 * time.Millisecond,
			Enabled:              true,
		}, nil)

		allowed, _ := rl.Allow("10.0.0.1")
		assert.True(t, allowed)

		allowed, _ = rl.Allow("10.0.0.1")
		assert.False(t, allowed)

		time.Sleep(15 * time.Millisecond)

		allowed, _ = rl.Allow("10.0.0.1")
		assert.True(t, allowed)
	})

	t.Run("disabled limiter allows everything", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimiterConfig{
			RequestsPerTimeFrame: 1,
			TimeFrame:            time.Minute,
			Enabled:              false,
		}, nil)

		for i := 0; i < 10; i++ {
			allowed, _ := rl.Allow("10.0.0.1")
			assert.True(t, allowed)
		}
	})
}
