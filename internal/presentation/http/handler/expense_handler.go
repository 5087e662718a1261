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

// ExpenseHandler handles expense ledger HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	location       *time.Location
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService, location *time.Location) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		location:       location,
	}
}

func (h *ExpenseHandler) inputFromRequest(req *request.ExpenseRequest) (*service.ExpenseInput, bool) {
	date, err := time.ParseInLocation(dateLayout, req.Date, h.location)
	if err != nil {
		return nil, false
	}
	return &service.ExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Date:     date,
		Category: enum.ExpenseCategory(req.Category),
	}, true
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := h.inputFromRequest(&req)
	if !ok {
		response.BadRequest(c, "Invalid date")
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}

// Get handles GET /expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense retrieved successfully", expense)
}

// Update handles PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := h.inputFromRequest(&req)
	if !ok {
		response.BadRequest(c, "Invalid date")
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter request.ExpenseFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ExpenseFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if filter.StartDate != "" && filter.EndDate != "" {
		start, end, ok := parseDateRange(filter.StartDate, filter.EndDate, h.location)
		if !ok {
			response.BadRequest(c, "Invalid date range")
			return
		}
		params.StartDate = &start
		params.EndDate = &end
	}

	if filter.Category != "" {
		category := enum.ExpenseCategory(filter.Category)
		if !category.Valid() {
			response.BadRequest(c, "Invalid category")
			return
		}
		params.Category = &category
	}

	result, err := h.expenseService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}
