package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	appcontext "github.com/ujenziiq/ujenziiq-go/internal/app_context"
	"github.com/ujenziiq/ujenziiq-go/internal/mailer"
	"go.uber.org/zap"
)

type recordingMailer struct {
	template string
	username string
	email    string
	calls    int
}

func (m *recordingMailer) Send(templateFile, toUsername, toEmail string, data any) (int, error) {
	m.template = templateFile
	m.username = toUsername
	m.email = toEmail
	m.calls++
	return 202, nil
}

// Registration sends the welcome mail to the new account.
func TestSendWelcomeEmail(t *testing.T) {
	rec := &recordingMailer{}
	app := &appcontext.Application{
		Logger: zap.NewNop().Sugar(),
		Mailer: rec,
	}
	uc := UserController{baseController: newBaseController(app)}

	uc.sendWelcomeEmail("foreman1", "foreman@example.com")

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, mailer.WELCOME_TEMPLATE, rec.template)
	assert.Equal(t, "foreman1", rec.username)
	assert.Equal(t, "foreman@example.com", rec.email)
}
