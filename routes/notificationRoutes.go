package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/middlewares"
)

func NotificationRoutes(server *gin.Engine) {
	notification := server.Group("/notification", middlewares.RequireAuth())
	{
		notification.GET("", controllers.GetNotifications)
		notification.GET("/unread-count", controllers.GetUnreadNotificationCount)
		notification.PATCH("/:notificationId/read", controllers.MarkNotificationRead)
	}
}
