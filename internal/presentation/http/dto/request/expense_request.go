package request

import "github.com/ardani17/barber-sub001/pkg/money"

// ExpenseRequest represents an expense create or update request
type ExpenseRequest struct {
	Title    string      `json:"title" binding:"required,min=2,max=255"`
	Amount   money.Money `json:"amount"`
	Date     string      `json:"date" binding:"required"`
	Category string      `json:"category" binding:"required,oneof=RENT UTILITIES SUPPLIES OTHER"`
}

// ExpenseFilterRequest represents expense listing parameters
type ExpenseFilterRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
