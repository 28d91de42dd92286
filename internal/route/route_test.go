package route

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	appcontext "github.com/ujenziiq/ujenziiq-go/internal/app_context"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
	"go.uber.org/zap"
)

// Resource roots are part of the public API contract; existing clients hit
// /api/safety and /api/images.
func TestResourceRootPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app := &appcontext.Application{Logger: zap.NewNop().Sugar()}
	m := middleware.NewMiddleware(app, nil)

	r := gin.New()
	rApi := r.Group("/api")
	SafetyIncidents(rApi, &controller.SafetyController{}, m)
	ProjectImages(rApi, &controller.ProjectImageController{}, m)
	SMSLogs(rApi, &controller.SMSLogController{}, m)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["GET /api/safety"])
	assert.True(t, registered["POST /api/safety"])
	assert.True(t, registered["GET /api/safety/:incidentId"])
	assert.True(t, registered["GET /api/images"])
	assert.True(t, registered["POST /api/images"])
	assert.True(t, registered["POST /api/sms-logs"])
}
