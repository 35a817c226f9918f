package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/middlewares"
)

func WishlistRoutes(server *gin.Engine) {
	wishlist := server.Group("/wishlist", middlewares.RequireAuth())
	{
		wishlist.GET("", controllers.GetWishlist)
		wishlist.POST("", controllers.AddToWishlist)
		wishlist.DELETE("/:productId", controllers.RemoveFromWishlist)
	}
}
