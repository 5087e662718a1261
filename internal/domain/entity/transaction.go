package entity

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is one completed checkout. Transactions form an append-only
// ledger: they are created exactly once and never mutated.
type Transaction struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Date            time.Time          `gorm:"not null;index" json:"date"`
	TotalAmount     money.Money        `gorm:"type:numeric(18,2);not null" json:"total_amount"`
	TotalCommission money.Money        `gorm:"type:numeric(18,2);not null" json:"total_commission"`
	PaymentMethod   enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	CashierID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	BarberID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"barber_id"`
	CreatedAt       time.Time          `json:"created_at"`

	Cashier User              `gorm:"foreignKey:CashierID" json:"-"`
	Barber  Barber            `gorm:"foreignKey:BarberID" json:"barber,omitempty"`
	Items   []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem is one line of a transaction. The unit price is a snapshot
// of the catalog price at the time of sale. Items are owned exclusively by
// their transaction.
type TransactionItem struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID     `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ItemType      enum.ItemType `gorm:"size:10;not null" json:"item_type"`
	ServiceID     *uuid.UUID    `gorm:"type:uuid;index" json:"service_id,omitempty"`
	ProductID     *uuid.UUID    `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Name          string        `gorm:"size:255;not null" json:"name"`
	Quantity      int           `gorm:"not null" json:"quantity"`
	UnitPrice     money.Money   `gorm:"type:numeric(18,2);not null" json:"unit_price"`
	Subtotal      money.Money   `gorm:"type:numeric(18,2);not null" json:"subtotal"`
	CreatedAt     time.Time     `json:"created_at"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new transaction item
func (i *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}
