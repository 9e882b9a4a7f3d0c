package models

import "gorm.io/gorm"

// SKUはユーザーごとに一意（グローバルではない）
type Item struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	SKU         string  `gorm:"not null;uniqueIndex:idx_items_user_sku" json:"sku"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `gorm:"index" json:"category,omitempty"`
	UserID      uint    `gorm:"not null;uniqueIndex:idx_items_user_sku" json:"userId"`
}

type ItemStats struct {
	TotalItems int64   `json:"totalItems"`
	TotalValue float64 `json:"totalValue"`
	LowStock   int64   `json:"lowStock"`
}
