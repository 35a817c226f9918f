package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/middlewares"
)

func ReviewRoutes(server *gin.Engine) {
	review := server.Group("/review", middlewares.RequireAuth())
	{
		review.POST("", controllers.CreateReview)
		review.DELETE("/:reviewId", controllers.DeleteReview)
	}
}
