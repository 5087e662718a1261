package entity

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Barber represents a barber on the shop roster. Barbers referenced by
// historical transactions are deactivated, never hard-deleted.
type Barber struct {
	ID               uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	Name             string                `gorm:"size:255;not null" json:"name"`
	Phone            string                `gorm:"size:50" json:"phone"`
	IsActive         bool                  `gorm:"default:true" json:"is_active"`
	CommissionRate   money.Money           `gorm:"type:numeric(8,4);not null" json:"commission_rate"`
	BaseSalary       money.Money           `gorm:"type:numeric(18,2);not null" json:"base_salary"`
	CompensationType enum.CompensationType `gorm:"size:20;not null" json:"compensation_type"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	DeletedAt        gorm.DeletedAt        `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new barber
func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Barber model
func (Barber) TableName() string {
	return "barbers"
}
