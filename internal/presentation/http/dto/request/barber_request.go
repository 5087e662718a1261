package request

import "github.com/ardani17/barber-sub001/pkg/money"

// BarberRequest represents a barber create or update request
type BarberRequest struct {
	Name             string      `json:"name" binding:"required,min=2,max=255"`
	Phone            string      `json:"phone" binding:"omitempty,max=50"`
	CommissionRate   money.Money `json:"commission_rate"`
	BaseSalary       money.Money `json:"base_salary"`
	CompensationType string      `json:"compensation_type" binding:"required,oneof=BASE_ONLY COMMISSION_ONLY BOTH"`
}

// SetBarberActiveRequest toggles a barber's active flag
type SetBarberActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// BarberFilterRequest represents barber filter parameters
type BarberFilterRequest struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
