package middleware

import (
	appcontext "github.com/ujenziiq/ujenziiq-go/internal/app_context"
	ratelimiter "github.com/ujenziiq/ujenziiq-go/internal/rate_limiter"
)

type Middleware struct {
	rateLimiter *ratelimiter.FixedWindowRateLimiter
	app         *appcontext.Application
}

func NewMiddleware(app *appcontext.Application,
	rateLimiter *ratelimiter.FixedWindowRateLimiter,
) *Middleware {
	return &Middleware{app: app, rateLimiter: rateLimiter}
}
