package stores

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/gulzar-store/gulzar-api/i18n"
	"github.com/gulzar-store/gulzar-api/models"
	"github.com/gulzar-store/gulzar-api/utils"
)

// OrderNotifier records an in-app notification (bilingual message pair)
// when an order is placed, and optionally sends a confirmation email.
type OrderNotifier struct {
	db        *gorm.DB
	sendEmail bool
}

func NewOrderNotifier(db *gorm.DB, sendEmail bool) *OrderNotifier {
	return &OrderNotifier{db: db, sendEmail: sendEmail}
}

func (n *OrderNotifier) OrderPlaced(ctx context.Context, userID uint, order *models.Order) {
	notification := models.Notification{
		UserID:    userID,
		Message:   fmt.Sprintf(i18n.T(i18n.LangEnglish, "notification.order_placed"), order.OrderNumber),
		MessageKu: fmt.Sprintf(i18n.T(i18n.LangKurdish, "notification.order_placed"), order.OrderNumber),
	}
	if err := n.db.WithContext(ctx).Create(&notification).Error; err != nil {
		log.Println("failed to record order notification:", err)
	}

	if !n.sendEmail {
		return
	}
	var user models.User
	if err := n.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		log.Println("failed to load user for order email:", err)
		return
	}
	if err := utils.SendOrderConfirmationEmail(user, order); err != nil {
		log.Println("failed to send order confirmation email:", err)
	}
}
