package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			logger := NewLogger(env)
			assert.NotNil(t, logger)
			assert.NotPanics(t, func() { logger.Debugf("logger check: %s", env) })
		})
	}
}
