package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
