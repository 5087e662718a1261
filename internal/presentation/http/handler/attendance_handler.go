package handler

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/request"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles attendance HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	location          *time.Location
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService, location *time.Location) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		location:          location,
	}
}

// RecordEvent handles POST /attendance/events
func (h *AttendanceHandler) RecordEvent(c *gin.Context) {
	var req request.AttendanceEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.RecordEventInput{
		BarberID:  req.BarberID,
		EventType: enum.AttendanceEventType(req.EventType),
	}
	if req.Timestamp != nil {
		input.Timestamp = *req.Timestamp
	}

	event, err := h.attendanceService.RecordEvent(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Attendance event recorded successfully", event)
}

// ListRecords handles GET /attendance/records. Records are derived from raw
// events per barber per day; days without events are omitted.
func (h *AttendanceHandler) ListRecords(c *gin.Context) {
	var filter request.AttendanceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "start_date and end_date are required")
		return
	}

	start, end, ok := parseDateRange(filter.StartDate, filter.EndDate, h.location)
	if !ok {
		response.BadRequest(c, "Invalid date range")
		return
	}

	barberID, ok := parseOptionalUUID(filter.BarberID)
	if !ok {
		response.BadRequest(c, "Invalid barber ID")
		return
	}

	records, err := h.attendanceService.GetDerivedRecords(c.Request.Context(), barberID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance records retrieved successfully", records)
}
