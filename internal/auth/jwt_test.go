package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
	"go.uber.org/zap"
)

func newTestJwt() *JWT {
	return NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, zap.NewNop().Sugar())
}

// Perform token generation and verify the generated tokens to ensure
// VerifyJwtToken round-trips the payload and token type.
func TestJWTRoundTrip(t *testing.T) {
	jwtService := newTestJwt()

	payload := JWTPayload{
		ID:        "id1234",
		Email:     "foreman@example.com",
		Username:  "foreman1",
		FirstName: "Juma",
		LastName:  "Mwangi",
		UserType:  constant.UserTypeForeman,
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	require.NoError(t, err)
	require.NotNil(t, refreshToken)
	require.NotNil(t, accessToken)

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	require.NoError(t, err)
	assert.Equal(t, constant.JWT_TYPE_ACCESS, accessClaims.Type)
	assert.Equal(t, payload, accessClaims.User)

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	require.NoError(t, err)
	assert.Equal(t, constant.JWT_TYPE_REFRESH, refreshClaims.Type)
	assert.Equal(t, payload.ID, refreshClaims.User.ID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	jwtService := newTestJwt()
	other := NewJwt(config.AuthConfig{JWT_SECRET: "other-secret"}, zap.NewNop().Sugar())

	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{ID: "u1"})
	require.NoError(t, err)

	_, err = other.VerifyJwtToken(*accessToken)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	jwtService := newTestJwt()

	_, err := jwtService.VerifyJwtToken("not-a-token")
	assert.Error(t, err)
}
