package sms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"go.uber.org/zap"
)

func TestHTTPGatewaySend(t *testing.T) {
	var got gatewayRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gateway := NewHTTPGateway(config.SMSConfig{
		GATEWAY_URL: server.URL,
		API_KEY:     "key-123",
		SENDER_ID:   "UJENZIIQ",
	}, zap.NewNop().Sugar())

	require.True(t, gateway.Enabled())
	require.NoError(t, gateway.Send("+255700000001", "Incident reported on site A"))

	assert.Equal(t, "Bearer key-123", authHeader)
	assert.Equal(t, "+255700000001", got.To)
	assert.Equal(t, "Incident reported on site A", got.Message)
	assert.Equal(t, "UJENZIIQ", got.SenderID)
}

func TestHTTPGatewaySendGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gateway := NewHTTPGateway(config.SMSConfig{GATEWAY_URL: server.URL}, zap.NewNop().Sugar())

	err := gateway.Send("+255700000001", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPGatewayDisabled(t *testing.T) {
	gateway := NewHTTPGateway(config.SMSConfig{}, zap.NewNop().Sugar())

	assert.False(t, gateway.Enabled())
	assert.Error(t, gateway.Send("+255700000001", "hello"))
}
