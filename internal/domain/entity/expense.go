package entity

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is an independent back-office ledger entry
type Expense struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Title     string               `gorm:"size:255;not null" json:"title"`
	Amount    money.Money          `gorm:"type:numeric(18,2);not null" json:"amount"`
	Date      time.Time            `gorm:"not null;index" json:"date"`
	Category  enum.ExpenseCategory `gorm:"size:20;not null" json:"category"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
