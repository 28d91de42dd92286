package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"name":    "UjenziIQ API",
		"message": "Construction project management backend",
	})
}

func (ic IndexController) Health(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"status": "ok",
	})
}

// ApiIndex lists the resource roots, mirroring the browsable API index.
func (ic IndexController) ApiIndex(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"auth":                 "/api/auth/jwt/create",
		"users":                "/api/users",
		"projects":             "/api/projects",
		"tasks":                "/api/tasks",
		"materials":            "/api/materials",
		"resource_allocations": "/api/resource-allocations",
		"safety":               "/api/safety",
		"images":               "/api/images",
		"progress_reports":     "/api/progress-reports",
		"notifications":        "/api/notifications",
		"messages":             "/api/messages",
		"comments":             "/api/comments",
		"sms_logs":             "/api/sms-logs",
	})
}
