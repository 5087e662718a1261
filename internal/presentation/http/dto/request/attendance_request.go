package request

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceEventRequest represents an attendance event submission.
// Timestamp is optional and defaults to the server clock.
type AttendanceEventRequest struct {
	BarberID  uuid.UUID  `json:"barber_id" binding:"required"`
	EventType string     `json:"event_type" binding:"required,oneof=CHECK_IN CHECK_OUT PERMISSION SICK LEAVE"`
	Timestamp *time.Time `json:"timestamp"`
}

// AttendanceFilterRequest represents attendance query parameters
type AttendanceFilterRequest struct {
	BarberID  string `form:"barber_id"`
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}
