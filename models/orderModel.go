package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

const (
	PaymentMethodVisa       = "visa"
	PaymentMethodMastercard = "mastercard"
)

type Order struct {
	gorm.Model
	OrderNumber     string          `json:"orderNumber" gorm:"uniqueIndex;size:64"`
	UserID          uint            `json:"userId" gorm:"index"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	ShippingAddress string          `json:"shippingAddress"`
	DeliveryDate    time.Time       `json:"deliveryDate"`
	PaymentMethod   string          `json:"paymentMethod"`
	CardLast4       string          `json:"cardLast4"`
	CardholderName  string          `json:"cardholderName"`
	CardExpiryMonth int             `json:"cardExpiryMonth"`
	CardExpiryYear  int             `json:"cardExpiryYear"`
	OrderItems      []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint            `json:"orderId" gorm:"index"`
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
	Quantity  int             `json:"quantity"`
}
