package ratelimiter

import (
	"sync"
	"time"

	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return NewFixedWindowLimiter(cfg, logger)
}

// FixedWindowRateLimiter counts requests per client within a fixed time
// window. Counts reset when the window rolls over.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*windowCount
	limit   int
	window  time.Duration
	enabled bool
	logger  *zap.SugaredLogger
}

type windowCount struct {
	count       int
	windowStart time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*windowCount),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether the client identified by key may make another
// request, and the wait time until the window resets when it may not.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.enabled {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	wc, ok := rl.clients[key]
	if !ok || now.Sub(wc.windowStart) >= rl.window {
		rl.clients[key] = &windowCount{count: 1, windowStart: now}
		return true, 0
	}

	if wc.count >= rl.limit {
		return false, rl.window - now.Sub(wc.windowStart)
	}

	wc.count++
	return true, 0
}
