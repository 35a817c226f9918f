package initializers

import (
	"log"

	"github.com/gulzar-store/gulzar-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
		&models.Review{},
		&models.Notification{},
	)
	log.Println("Database synced successfully.")
}
