package models

import "gorm.io/gorm"

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	gorm.Model
	CartID    uint    `json:"cartId" gorm:"index:idx_cart_product,unique"`
	ProductID uint    `json:"productId" gorm:"index:idx_cart_product,unique"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
