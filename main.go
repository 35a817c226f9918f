package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/controllers"
	"github.com/gulzar-store/gulzar-api/initializers"
	"github.com/gulzar-store/gulzar-api/routes"
	"github.com/gulzar-store/gulzar-api/services"
	"github.com/gulzar-store/gulzar-api/stores"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	store := stores.NewGormStore(initializers.DB)
	notifier := stores.NewOrderNotifier(initializers.DB, os.Getenv("SEND_ORDER_EMAILS") == "true")
	controllers.SetCheckoutService(
		services.NewOrderPlacementService(store, store, store, notifier))

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.gulzar.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.WishlistRoutes(server)
	routes.ReviewRoutes(server)
	routes.NotificationRoutes(server)
	routes.AdminRoutes(server)

	server.Run()
}
