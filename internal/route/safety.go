package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
)

func SafetyIncidents(r *gin.RouterGroup, sc *controller.SafetyController, middleware *middleware.Middleware) {
	incidents := r.Group("/safety")
	incidents.Use(middleware.AuthMiddleware)
	{
		incidents.POST("", sc.CreateIncident)
		incidents.GET("", sc.GetIncidentList)
		incidents.GET("/:incidentId", sc.GetIncidentById)
		incidents.PATCH("/:incidentId", sc.UpdateIncident)
		incidents.DELETE("/:incidentId", sc.DeleteIncident)
	}
}

func ProjectImages(r *gin.RouterGroup, ic *controller.ProjectImageController, middleware *middleware.Middleware) {
	images := r.Group("/images")
	images.Use(middleware.AuthMiddleware)
	{
		images.POST("", ic.UploadImage)
		images.GET("", ic.GetImageList)
		images.GET("/:imageId", ic.GetImageById)
		images.DELETE("/:imageId", ic.DeleteImage)
	}
}

func ProgressReports(r *gin.RouterGroup, rc *controller.ProgressReportController, middleware *middleware.Middleware) {
	reports := r.Group("/progress-reports")
	reports.Use(middleware.AuthMiddleware)
	{
		reports.POST("", rc.CreateReport)
		reports.GET("", rc.GetReportList)
		reports.GET("/:reportId", rc.GetReportById)
		reports.PATCH("/:reportId", rc.UpdateReport)
		reports.DELETE("/:reportId", rc.DeleteReport)
	}
}
