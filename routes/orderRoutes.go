package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/middlewares"
	"github.com/gulzar-store/gulzar-api/models"
)

func OrderRoutes(server *gin.Engine) {
	order := server.Group("/order", middlewares.RequireAuth())
	{
		order.GET("", controllers.GetMyOrders)
		order.GET("/:orderId", controllers.GetOrderById)
	}

	admin := server.Group("/admin/order",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(models.PermOrders))
	{
		admin.GET("", controllers.GetOrders)
		admin.GET("/undelivered-count", controllers.GetUndeliveredOrders)
		admin.PATCH("/:orderId", controllers.UpdateOrderStatus)
	}

	server.POST("/admin/order/:orderId/refund",
		middlewares.RequireAuth(),
		middlewares.RequireSuperAdmin(),
		controllers.RefundOrder)
}
