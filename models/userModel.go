package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Admin permission scopes. A plain admin may be restricted to a subset
// of these; a superadmin implicitly holds all of them.
const (
	PermProducts = "products"
	PermOrders   = "orders"
	PermUsers    = "users"
	PermReviews  = "reviews"
)

type User struct {
	gorm.Model
	Fullname    string         `json:"fullname"`
	Email       string         `json:"email" gorm:"uniqueIndex;size:191"`
	Phone       string         `json:"phone"`
	Password    string         `json:"-"`
	Role        string         `json:"role" gorm:"default:customer"`
	Permissions datatypes.JSON `json:"permissions"`
	Language    string         `json:"language" gorm:"default:en"`
}

type SignupData struct {
	Fullname string `json:"fullname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Language string `json:"language"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
