package sms

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
	"go.uber.org/zap"
)

// Client delivers a text message to a phone number. Used for users on basic
// phones who opted in to SMS notifications.
type Client interface {
	Send(phoneNumber, message string) error
	Enabled() bool
}

// HTTPGateway posts messages to a configurable HTTP SMS provider.
type HTTPGateway struct {
	cfg    config.SMSConfig
	client *resty.Client
	logger *zap.SugaredLogger
}

func NewHTTPGateway(cfg config.SMSConfig, logger *zap.SugaredLogger) *HTTPGateway {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	return &HTTPGateway{cfg: cfg, client: client, logger: logger}
}

func (g HTTPGateway) Enabled() bool {
	return g.cfg.GATEWAY_URL != ""
}

type gatewayRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id"`
}

func (g HTTPGateway) Send(phoneNumber, message string) error {
	if !g.Enabled() {
		return fmt.Errorf("sms gateway is not configured")
	}

	resp, err := g.client.R().
		SetHeader("Authorization", "Bearer "+g.cfg.API_KEY).
		SetBody(gatewayRequest{
			To:       phoneNumber,
			Message:  message,
			SenderID: g.cfg.SENDER_ID,
		}).
		Post(g.cfg.GATEWAY_URL)
	if err != nil {
		g.logger.Errorf("Failed to reach sms gateway: %v", err)
		return err
	}

	if resp.IsError() {
		g.logger.Errorf("Sms gateway returned status %d: %s", resp.StatusCode(), resp.String())
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode())
	}

	return nil
}
