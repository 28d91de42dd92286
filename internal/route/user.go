package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
)

func Users(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	users := r.Group("/users")
	{
		// Registration is the only unauthenticated write.
		users.POST("", userController.Register)

		authed := users.Group("")
		authed.Use(middleware.AuthMiddleware)
		{
			authed.GET("", userController.GetUserList)
			authed.GET("/me", userController.Me)
			authed.GET("/by_user_type", userController.GetUserList)
			authed.GET("/:userId", userController.GetUserById)
			authed.PATCH("/:userId", userController.UpdateUser)
			authed.DELETE("/:userId", userController.DeleteUser)
		}
	}
}
