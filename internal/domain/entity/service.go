package entity

import (
	"time"

	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service represents a haircut or grooming service on the menu. Services
// have no stock concept.
type Service struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Price     money.Money    `gorm:"type:numeric(18,2);not null" json:"price"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
