package repository

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// AttendanceEventRepository defines the interface for the append-only
// attendance event log.
type AttendanceEventRepository interface {
	Create(ctx context.Context, event *entity.AttendanceEvent) error
	// ListByRange returns events with timestamp in [start, end), ordered by
	// timestamp then id so derivation is deterministic.
	ListByRange(ctx context.Context, barberID *uuid.UUID, start, end time.Time) ([]entity.AttendanceEvent, error)
}
