package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name          string          `json:"name" binding:"required"`
	NameKu        string          `json:"nameKu"`
	Description   string          `json:"description"`
	DescriptionKu string          `json:"descriptionKu"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock         int             `json:"stock"`
	Category      string          `json:"category" gorm:"index"`
	ImageUrl      string          `json:"imageUrl"`
	Featured      bool            `json:"featured"`
	Reviews       []Review        `json:"reviews,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// LocalizedName returns the Kurdish name when lang is "ku" and one is
// set, otherwise the English name.
func (p Product) LocalizedName(lang string) string {
	if lang == "ku" && p.NameKu != "" {
		return p.NameKu
	}
	return p.Name
}

// LocalizedDescription mirrors LocalizedName for the description pair.
func (p Product) LocalizedDescription(lang string) string {
	if lang == "ku" && p.DescriptionKu != "" {
		return p.DescriptionKu
	}
	return p.Description
}
