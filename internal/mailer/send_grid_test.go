package mailer

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTemplate(t *testing.T, templateFile string, data any) (string, string) {
	t.Helper()

	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	require.NoError(t, err)

	subject := new(bytes.Buffer)
	require.NoError(t, tmpl.ExecuteTemplate(subject, "subject", data))

	body := new(bytes.Buffer)
	require.NoError(t, tmpl.ExecuteTemplate(body, "body", data))

	return subject.String(), body.String()
}

func TestWelcomeTemplate(t *testing.T) {
	subject, body := renderTemplate(t, WELCOME_TEMPLATE, map[string]any{
		"Username": "foreman1",
	})

	assert.Equal(t, "Welcome to UjenziIQ", subject)
	assert.Contains(t, body, "foreman1")
}

func TestNotificationTemplate(t *testing.T) {
	subject, body := renderTemplate(t, NOTIFICATION_TEMPLATE, map[string]any{
		"Username": "foreman1",
		"Title":    "Task assigned",
		"Message":  "You were assigned to Pour foundation",
	})

	assert.NotEmpty(t, subject)
	assert.Contains(t, body, "Pour foundation")
}