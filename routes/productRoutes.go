package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/middlewares"
	"github.com/gulzar-store/gulzar-api/models"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
	server.GET("/product/:id/reviews", controllers.GetProductReviews)

	adminOnly := server.Group("/product",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(models.PermProducts))
	{
		adminOnly.POST("", controllers.CreateProduct)
		adminOnly.PUT("/:id", controllers.UpdateProduct)
		adminOnly.DELETE("/:id", controllers.DeleteProduct)
	}
}
