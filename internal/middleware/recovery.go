package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

// RecoveryMiddleware converts panics into a generic 500 response so a
// handler bug never tears down the process.
func (m Middleware) RecoveryMiddleware(ctx *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.app.Logger.Errorf("Panic recovered on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, r)
			util.ResponseFailed(ctx, 500, "Internal server error", nil, nil)
			ctx.Abort()
		}
	}()

	ctx.Next()
}
