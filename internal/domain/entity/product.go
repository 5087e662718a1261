package entity

import (
	"time"

	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a retail item with tracked stock
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	BuyPrice  money.Money    `gorm:"type:numeric(18,2);not null" json:"buy_price"`
	SellPrice money.Money    `gorm:"type:numeric(18,2);not null" json:"sell_price"`
	Stock     int            `gorm:"not null;default:0" json:"stock"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether stock has fallen to or below the threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}
