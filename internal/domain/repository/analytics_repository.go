package repository

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
)

// RevenueSummary holds range totals for the dashboard
type RevenueSummary struct {
	Revenue          money.Money
	Commission       money.Money
	TransactionCount int64
}

// DailyRevenuePoint is revenue for a single calendar day
type DailyRevenuePoint struct {
	Date    string `gorm:"column:day"`
	Revenue money.Money
}

// BarberRevenueResult is revenue attributed to one barber
type BarberRevenueResult struct {
	BarberID   uuid.UUID
	BarberName string
	Revenue    money.Money
	Commission money.Money
}

// TopItemResult is a service's or product's sales performance
type TopItemResult struct {
	RefID        uuid.UUID
	Name         string
	QuantitySold int
	Revenue      money.Money
}

// PaymentMethodResult is revenue grouped by payment method
type PaymentMethodResult struct {
	PaymentMethod    string
	Revenue          money.Money
	TransactionCount int64
}

// AnalyticsRepository defines the read-only rollup queries behind the
// dashboard. All ranges are [start, end).
type AnalyticsRepository interface {
	GetRevenueSummary(ctx context.Context, start, end time.Time) (*RevenueSummary, error)
	GetRevenueByDay(ctx context.Context, start, end time.Time) ([]DailyRevenuePoint, error)
	GetRevenueByBarber(ctx context.Context, start, end time.Time) ([]BarberRevenueResult, error)
	GetTopServices(ctx context.Context, start, end time.Time, limit int) ([]TopItemResult, error)
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopItemResult, error)
	GetRevenueByPaymentMethod(ctx context.Context, start, end time.Time) ([]PaymentMethodResult, error)
}
