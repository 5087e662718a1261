package entity

import (
	"time"

	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalaryDebt records an advance or deduction owed by a barber. Outstanding
// debts (PaidAt == nil) are netted against payable salary at reconciliation.
type SalaryDebt struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	BarberID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"barber_id"`
	Amount    money.Money `gorm:"type:numeric(18,2);not null" json:"amount"`
	Reason    string      `gorm:"size:255" json:"reason"`
	CreatedAt time.Time   `json:"created_at"`
	PaidAt    *time.Time  `json:"paid_at"`

	Barber Barber `gorm:"foreignKey:BarberID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new salary debt
func (d *SalaryDebt) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalaryDebt model
func (SalaryDebt) TableName() string {
	return "salary_debts"
}

// IsPaid reports whether the debt has been settled.
func (d *SalaryDebt) IsPaid() bool {
	return d.PaidAt != nil
}
