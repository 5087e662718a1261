package request

import "github.com/ardani17/barber-sub001/pkg/money"

// ProductRequest represents a product create or update request
type ProductRequest struct {
	Name      string      `json:"name" binding:"required,min=2,max=255"`
	BuyPrice  money.Money `json:"buy_price"`
	SellPrice money.Money `json:"sell_price"`
	Stock     int         `json:"stock" binding:"min=0"`
}

// ServiceRequest represents a service create or update request
type ServiceRequest struct {
	Name  string      `json:"name" binding:"required,min=2,max=255"`
	Price money.Money `json:"price"`
}

// CatalogFilterRequest represents catalog listing parameters
type CatalogFilterRequest struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
