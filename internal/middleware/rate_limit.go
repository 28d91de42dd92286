package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		m.app.Logger.Debugf("Rate limit exceeded for %s", ctx.ClientIP())
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, 429, "Rate limit exceeded", nil, nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
