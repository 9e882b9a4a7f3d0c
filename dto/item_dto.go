package dto

import "gin-inventory/models"

// ItemInput は作成と更新で共通。QuantityとPriceはポインタにして
// 0と未指定を区別する（0は有効、負数と欠落は400）。
type ItemInput struct {
	Name        string   `json:"name" binding:"required"`
	SKU         string   `json:"sku" binding:"required"`
	Quantity    *int     `json:"quantity" binding:"required,gte=0"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

type ListItemsQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

type ItemListResponse struct {
	Items      []models.Item `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}
