package request

import (
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
)

// DebtRequest represents a salary debt creation request
type DebtRequest struct {
	BarberID uuid.UUID   `json:"barber_id" binding:"required"`
	Amount   money.Money `json:"amount"`
	Reason   string      `json:"reason" binding:"omitempty,max=255"`
}

// DebtFilterRequest represents debt listing parameters
type DebtFilterRequest struct {
	BarberID   string `form:"barber_id"`
	UnpaidOnly bool   `form:"unpaid_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
