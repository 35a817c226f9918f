package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID    uint   `json:"userId" gorm:"index:idx_review_user_product,unique"`
	ProductID uint   `json:"productId" gorm:"index:idx_review_user_product,unique"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
