package entity

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceEvent is one raw attendance scan or leave marker for a barber.
// The log is append-only; events are never updated or deleted.
type AttendanceEvent struct {
	ID        uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	BarberID  uuid.UUID                `gorm:"type:uuid;not null;index" json:"barber_id"`
	EventType enum.AttendanceEventType `gorm:"size:20;not null" json:"event_type"`
	Timestamp time.Time                `gorm:"not null;index" json:"timestamp"`
	CreatedAt time.Time                `json:"created_at"`

	Barber Barber `gorm:"foreignKey:BarberID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new event
func (e *AttendanceEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AttendanceEvent model
func (AttendanceEvent) TableName() string {
	return "attendance_events"
}

// DerivedAttendanceRecord is the computed per-day attendance status for a
// barber. It is never stored; it is folded from the day's events on read.
type DerivedAttendanceRecord struct {
	BarberID uuid.UUID             `json:"barber_id"`
	Date     string                `json:"date"` // local calendar day, 2006-01-02
	Status   enum.AttendanceStatus `json:"status"`
	CheckIn  *time.Time            `json:"check_in"`
	CheckOut *time.Time            `json:"check_out"`
}
