package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddCartItem)
		cart.PATCH("/:itemId", controllers.UpdateCartItem)
		cart.DELETE("/:itemId", controllers.RemoveCartItem)
	}

	server.POST("/checkout", middlewares.RequireAuth(), controllers.Checkout)
}
