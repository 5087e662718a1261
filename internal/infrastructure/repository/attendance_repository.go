package repository

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	domainRepo "github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceEventRepository struct {
	db *gorm.DB
}

// NewAttendanceEventRepository creates a new attendance event repository
func NewAttendanceEventRepository(db *gorm.DB) domainRepo.AttendanceEventRepository {
	return &attendanceEventRepository{db: db}
}

func (r *attendanceEventRepository) Create(ctx context.Context, event *entity.AttendanceEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *attendanceEventRepository) ListByRange(ctx context.Context, barberID *uuid.UUID, start, end time.Time) ([]entity.AttendanceEvent, error) {
	var events []entity.AttendanceEvent

	query := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", start, end)

	if barberID != nil {
		query = query.Where("barber_id = ?", *barberID)
	}

	err := query.Order("timestamp ASC, id ASC").Find(&events).Error
	return events, err
}
