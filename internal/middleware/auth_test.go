package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcontext "github.com/ujenziiq/ujenziiq-go/internal/app_context"
	"github.com/ujenziiq/ujenziiq-go/internal/auth"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, auth.JWTInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, zap.NewNop().Sugar())
	app := &appcontext.Application{
		Logger:     zap.NewNop().Sugar(),
		JWTService: jwtService,
	}
	m := NewMiddleware(app, nil)

	r := gin.New()
	r.GET("/protected", m.AuthMiddleware, func(ctx *gin.Context) {
		user, ok := ctx.Get("user")
		require.True(t, ok)
		payload := user.(auth.JWTPayload)
		ctx.JSON(http.StatusOK, gin.H{"userId": payload.ID})
	})
	return r, jwtService
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	r, jwtService := newTestRouter(t)

	refreshToken, _, err := jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:       "user-1",
		Email:    "pm@example.com",
		UserType: constant.UserTypeProjectManager,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+*refreshToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token type")
}

func TestAuthMiddlewareAcceptsAccessToken(t *testing.T) {
	r, jwtService := newTestRouter(t)

	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:       "user-1",
		Email:    "pm@example.com",
		UserType: constant.UserTypeProjectManager,
	})
	require.NoError(t, err)

	for _, scheme := range []string{"Bearer", "JWT"} {
		t.Run(scheme, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", scheme+" "+*accessToken)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "user-1")
		})
	}
}
