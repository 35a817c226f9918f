package models

import "gorm.io/gorm"

type WishlistItem struct {
	gorm.Model
	UserID    uint    `json:"userId" gorm:"index:idx_user_product,unique"`
	ProductID uint    `json:"productId" gorm:"index:idx_user_product,unique"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
