package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
)

func Tasks(r *gin.RouterGroup, tc *controller.TaskController, middleware *middleware.Middleware) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware)
	{
		tasks.POST("", tc.CreateTask)
		tasks.GET("", tc.GetTaskList)
		tasks.GET("/my_tasks", tc.GetOwnTaskList)
		tasks.GET("/:taskId", tc.GetTaskById)
		tasks.GET("/:taskId/dependencies", tc.GetTaskDependencies)
		tasks.PATCH("/:taskId", tc.UpdateTask)
		tasks.DELETE("/:taskId", tc.DeleteTask)
	}
}
