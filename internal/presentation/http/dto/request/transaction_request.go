package request

// TransactionFilterRequest represents transaction search parameters
type TransactionFilterRequest struct {
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	BarberID      string `form:"barber_id"`
	CashierID     string `form:"cashier_id"`
	PaymentMethod string `form:"payment_method"`
	Search        string `form:"search"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// DateRangeRequest represents a plain date range query, used by payroll and
// dashboard endpoints.
type DateRangeRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}
