package handler

import (
	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/request"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/response"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DebtHandler handles salary debt HTTP requests
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// Create handles POST /debts
func (h *DebtHandler) Create(c *gin.Context) {
	var req request.DebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	debt, err := h.debtService.Create(c.Request.Context(), &service.DebtInput{
		BarberID: req.BarberID,
		Amount:   req.Amount,
		Reason:   req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Salary debt recorded successfully", debt)
}

// MarkPaid handles POST /debts/:id/pay
func (h *DebtHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	debt, err := h.debtService.MarkPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Debt marked as paid", debt)
}

// List handles GET /debts
func (h *DebtHandler) List(c *gin.Context) {
	var filter request.DebtFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SalaryDebtFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		UnpaidOnly: filter.UnpaidOnly,
	}

	barberID, ok := parseOptionalUUID(filter.BarberID)
	if !ok {
		response.BadRequest(c, "Invalid barber ID")
		return
	}
	params.BarberID = barberID

	result, err := h.debtService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Salary debts retrieved successfully", result)
}
