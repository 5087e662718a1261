package handler

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/request"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/response"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles transaction report HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	location           *time.Location
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService, location *time.Location) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		location:           location,
	}
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", txn)
}

// Search handles GET /transactions
func (h *TransactionHandler) Search(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if filter.StartDate != "" || filter.EndDate != "" {
		if filter.StartDate == "" || filter.EndDate == "" {
			response.BadRequest(c, "Both start_date and end_date are required for date filtering")
			return
		}
		start, end, ok := parseDateRange(filter.StartDate, filter.EndDate, h.location)
		if !ok {
			response.BadRequest(c, "Invalid date range")
			return
		}
		params.StartDate = &start
		params.EndDate = &end
	}

	barberID, ok := parseOptionalUUID(filter.BarberID)
	if !ok {
		response.BadRequest(c, "Invalid barber ID")
		return
	}
	params.BarberID = barberID

	cashierID, ok := parseOptionalUUID(filter.CashierID)
	if !ok {
		response.BadRequest(c, "Invalid cashier ID")
		return
	}
	params.CashierID = cashierID

	if filter.PaymentMethod != "" {
		method := enum.PaymentMethod(filter.PaymentMethod)
		if !method.Valid() {
			response.BadRequest(c, "Invalid payment method")
			return
		}
		params.PaymentMethod = &method
	}

	result, err := h.transactionService.Search(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}
