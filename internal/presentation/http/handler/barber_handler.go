package handler

import (
	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/request"
	"github.com/ardani17/barber-sub001/internal/presentation/http/dto/response"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BarberHandler handles barber roster HTTP requests
type BarberHandler struct {
	barberService *service.BarberService
}

// NewBarberHandler creates a new barber handler
func NewBarberHandler(barberService *service.BarberService) *BarberHandler {
	return &BarberHandler{barberService: barberService}
}

func barberInputFromRequest(req *request.BarberRequest) *service.BarberInput {
	return &service.BarberInput{
		Name:             req.Name,
		Phone:            req.Phone,
		CommissionRate:   req.CommissionRate,
		BaseSalary:       req.BaseSalary,
		CompensationType: enum.CompensationType(req.CompensationType),
	}
}

// Create handles POST /barbers
func (h *BarberHandler) Create(c *gin.Context) {
	var req request.BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	barber, err := h.barberService.Create(c.Request.Context(), barberInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Barber created successfully", barber)
}

// Get handles GET /barbers/:id
func (h *BarberHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid barber ID")
		return
	}

	barber, err := h.barberService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Barber retrieved successfully", barber)
}

// Update handles PUT /barbers/:id
func (h *BarberHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid barber ID")
		return
	}

	var req request.BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	barber, err := h.barberService.Update(c.Request.Context(), id, barberInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Barber updated successfully", barber)
}

// SetActive handles PATCH /barbers/:id/active
func (h *BarberHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid barber ID")
		return
	}

	var req request.SetBarberActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	barber, err := h.barberService.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Barber updated successfully", barber)
}

// Delete handles DELETE /barbers/:id
func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid barber ID")
		return
	}

	if err := h.barberService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles GET /barbers
func (h *BarberHandler) List(c *gin.Context) {
	var filter request.BarberFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BarberFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:     filter.Search,
		ActiveOnly: filter.ActiveOnly,
	}

	result, err := h.barberService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Barbers retrieved successfully", result)
}
