package service

import (
	"context"
	"sort"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/google/uuid"
)

// AttendanceService records raw attendance events and derives per-day
// attendance records from them.
type AttendanceService struct {
	eventRepo     repository.AttendanceEventRepository
	barberRepo    repository.BarberRepository
	location      *time.Location
	defaultStatus enum.AttendanceStatus
}

// NewAttendanceService creates a new attendance service. defaultStatus is
// the status assigned to a day whose events set neither check-in nor
// check-out time.
func NewAttendanceService(
	eventRepo repository.AttendanceEventRepository,
	barberRepo repository.BarberRepository,
	location *time.Location,
	defaultStatus enum.AttendanceStatus,
) *AttendanceService {
	if location == nil {
		location = time.Local
	}
	if !defaultStatus.Valid() {
		defaultStatus = enum.StatusHadir
	}
	return &AttendanceService{
		eventRepo:     eventRepo,
		barberRepo:    barberRepo,
		location:      location,
		defaultStatus: defaultStatus,
	}
}

// RecordEventInput represents an attendance event submission
type RecordEventInput struct {
	BarberID  uuid.UUID
	EventType enum.AttendanceEventType
	Timestamp time.Time // zero value means now
}

// RecordEvent appends one event to the attendance log
func (s *AttendanceService) RecordEvent(ctx context.Context, input *RecordEventInput) (*entity.AttendanceEvent, error) {
	if !input.EventType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid attendance event type")
	}

	barber, err := s.barberRepo.GetByID(ctx, input.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, apperror.NewNotFoundError("Barber")
	}
	if !barber.IsActive {
		return nil, apperror.NewBadRequestError("Barber is not active")
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	event := &entity.AttendanceEvent{
		BarberID:  input.BarberID,
		EventType: input.EventType,
		Timestamp: ts,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetDerivedRecords returns one derived record per (barber, day) for events
// in the date window. Days with no events yield no record.
func (s *AttendanceService) GetDerivedRecords(ctx context.Context, barberID *uuid.UUID, start, end time.Time) ([]entity.DerivedAttendanceRecord, error) {
	events, err := s.eventRepo.ListByRange(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	return DeriveAttendanceRecords(events, s.location, s.defaultStatus), nil
}

type dayKey struct {
	barberID uuid.UUID
	date     string
}

type dayState struct {
	locked   bool
	status   enum.AttendanceStatus
	checkIn  *time.Time
	checkOut *time.Time
}

// DeriveAttendanceRecords folds raw events into one record per (barber,
// local calendar day). The fold is deterministic and idempotent: events are
// ordered by (timestamp, id) before processing, so the result does not
// depend on input order.
//
// CHECK_IN and CHECK_OUT set the day's times. A PERMISSION, SICK or LEAVE
// event locks the day's status to IZIN, SAKIT or LIBUR and the final record
// carries no times, wherever the event falls in the day. Unlocked days
// derive their status from the recorded times: check-out without check-in
// means PULANG, neither time means defaultStatus.
func DeriveAttendanceRecords(events []entity.AttendanceEvent, location *time.Location, defaultStatus enum.AttendanceStatus) []entity.DerivedAttendanceRecord {
	sorted := make([]entity.AttendanceEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	states := make(map[dayKey]*dayState)
	var order []dayKey

	for i := range sorted {
		event := &sorted[i]
		localTS := event.Timestamp.In(location)
		key := dayKey{
			barberID: event.BarberID,
			date:     localTS.Format("2006-01-02"),
		}

		state, ok := states[key]
		if !ok {
			state = &dayState{status: defaultStatus}
			states[key] = state
			order = append(order, key)
		}

		switch {
		case event.EventType == enum.EventCheckIn:
			ts := localTS
			state.checkIn = &ts
		case event.EventType == enum.EventCheckOut:
			ts := localTS
			state.checkOut = &ts
		case event.EventType.IsLeaveType():
			state.locked = true
			state.status = enum.StatusForLeaveEvent(event.EventType)
			state.checkIn = nil
			state.checkOut = nil
		}
	}

	records := make([]entity.DerivedAttendanceRecord, 0, len(order))
	for _, key := range order {
		state := states[key]

		record := entity.DerivedAttendanceRecord{
			BarberID: key.barberID,
			Date:     key.date,
		}

		if state.locked {
			// A leave-type event anywhere in the day overrides recorded
			// times.
			record.Status = state.status
		} else {
			record.CheckIn = state.checkIn
			record.CheckOut = state.checkOut
			switch {
			case state.checkIn != nil:
				record.Status = enum.StatusHadir
			case state.checkOut != nil:
				record.Status = enum.StatusPulang
			default:
				record.Status = defaultStatus
			}
		}

		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].BarberID.String() < records[j].BarberID.String()
	})

	return records
}
