package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/middlewares"
	"github.com/gulzar-store/gulzar-api/models"
)

func AdminRoutes(server *gin.Engine) {
	server.GET("/admin/users",
		middlewares.RequireAuth(),
		middlewares.RequirePermission(models.PermUsers),
		controllers.GetUsers)

	superAdmin := server.Group("/admin/users",
		middlewares.RequireAuth(),
		middlewares.RequireSuperAdmin())
	{
		superAdmin.POST("", controllers.CreateAdmin)
		superAdmin.PATCH("/:adminId/permissions", controllers.UpdateAdminPermissions)
		superAdmin.DELETE("/:adminId", controllers.DeleteAdmin)
	}
}
