package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID    uint   `json:"userId" gorm:"index"`
	Message   string `json:"message"`
	MessageKu string `json:"messageKu"`
	Read      bool   `json:"read"`
}
