package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
)

func Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware)
	{
		projects.POST("", pc.CreateProject)
		projects.GET("", pc.GetProjectList)
		projects.GET("/my_projects", pc.GetOwnProjectList)
		projects.GET("/:projectId", pc.GetProjectById)
		projects.PATCH("/:projectId", pc.UpdateProject)
		projects.DELETE("/:projectId", pc.DeleteProject)
		projects.GET("/:projectId/dashboard", pc.GetDashboard)
		projects.GET("/:projectId/export", pc.ExportProject)
	}
}
