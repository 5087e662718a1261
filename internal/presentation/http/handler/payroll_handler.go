package handler

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/request"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayrollHandler handles salary reconciliation HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
	location       *time.Location
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService, location *time.Location) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
		location:       location,
	}
}

func (h *PayrollHandler) bindRange(c *gin.Context) (time.Time, time.Time, bool) {
	var req request.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "start_date and end_date are required")
		return time.Time{}, time.Time{}, false
	}

	start, end, ok := parseDateRange(req.StartDate, req.EndDate, h.location)
	if !ok {
		response.BadRequest(c, "Invalid date range")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Reconcile handles GET /payroll/:barberId. It is a read-only preview of
// the barber's statement for the period.
func (h *PayrollHandler) Reconcile(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("barberId"))
	if err != nil {
		response.BadRequest(c, "Invalid barber ID")
		return
	}

	start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	statement, err := h.payrollService.Reconcile(c.Request.Context(), barberID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary statement computed successfully", statement)
}

// ReconcileAll handles GET /payroll
func (h *PayrollHandler) ReconcileAll(c *gin.Context) {
	start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	statements, err := h.payrollService.ReconcileAll(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary statements computed successfully", statements)
}

// Payout handles POST /payroll/:barberId/payout. It settles debts covered
// by the period's earnings.
func (h *PayrollHandler) Payout(c *gin.Context) {
	barberID, err := uuid.Parse(c.Param("barberId"))
	if err != nil {
		response.BadRequest(c, "Invalid barber ID")
		return
	}

	start, end, ok := h.bindRange(c)
	if !ok {
		return
	}

	statement, err := h.payrollService.Payout(c.Request.Context(), barberID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salary paid out successfully", statement)
}
