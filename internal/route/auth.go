package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
)

func Auth(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/jwt/create", authController.CreateJwt)
		auth.POST("/jwt/refresh", authController.RefreshAccessToken)
		auth.POST("/jwt/verify", authController.VerifyJwtAccessToken)
	}
}
