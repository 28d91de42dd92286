package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
)

func Notifications(r *gin.RouterGroup, nc *controller.NotificationController, middleware *middleware.Middleware) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware)
	{
		notifications.POST("", nc.CreateNotification)
		notifications.GET("", nc.GetNotificationList)
		notifications.POST("/mark_all_as_read", nc.MarkAllAsRead)
		notifications.GET("/:notificationId", nc.GetNotificationById)
		notifications.POST("/:notificationId/mark_as_read", nc.MarkAsRead)
	}
}

func Messages(r *gin.RouterGroup, mc *controller.MessageController, middleware *middleware.Middleware) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware)
	{
		messages.POST("", mc.SendMessage)
		messages.GET("", mc.GetMessageList)
		messages.GET("/:messageId", mc.GetMessageById)
		messages.POST("/:messageId/mark_as_read", mc.MarkAsRead)
	}
}

func Comments(r *gin.RouterGroup, cc *controller.CommentController, middleware *middleware.Middleware) {
	comments := r.Group("/comments")
	comments.Use(middleware.AuthMiddleware)
	{
		comments.POST("", cc.CreateComment)
		comments.GET("", cc.GetCommentList)
		comments.GET("/:commentId", cc.GetCommentById)
		comments.PATCH("/:commentId", cc.UpdateComment)
		comments.DELETE("/:commentId", cc.DeleteComment)
	}
}

func SMSLogs(r *gin.RouterGroup, sc *controller.SMSLogController, middleware *middleware.Middleware) {
	logs := r.Group("/sms-logs")
	logs.Use(middleware.AuthMiddleware)
	{
		logs.POST("", sc.CreateSMSLog)
		logs.GET("", sc.GetSMSLogList)
		logs.GET("/:logId", sc.GetSMSLogById)
	}
}
