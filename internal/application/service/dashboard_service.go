package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/infrastructure/cache"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/rs/zerolog/log"
)

const topItemLimit = 5

// DashboardService aggregates ledger data into the owner dashboard. Results
// are cached per date range and invalidated on checkout.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	expenseRepo   repository.ExpenseRepository
	cache         cache.Cache
	cacheTTL      time.Duration
}

func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	expenseRepo repository.ExpenseRepository,
	cache cache.Cache,
	cacheTTL time.Duration,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		expenseRepo:   expenseRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// DashboardStats is the full dashboard payload for one date range
type DashboardStats struct {
	PeriodStart      time.Time                          `json:"period_start"`
	PeriodEnd        time.Time                          `json:"period_end"`
	Revenue          money.Money                        `json:"revenue"`
	Commission       money.Money                        `json:"commission"`
	Expenses         money.Money                        `json:"expenses"`
	NetProfit        money.Money                        `json:"net_profit"`
	TransactionCount int64                              `json:"transaction_count"`
	RevenueGrowth    float64                            `json:"revenue_growth"`
	RevenueByDay     []repository.DailyRevenuePoint     `json:"revenue_by_day"`
	RevenueByBarber  []repository.BarberRevenueResult   `json:"revenue_by_barber"`
	TopServices      []repository.TopItemResult         `json:"top_services"`
	TopProducts      []repository.TopItemResult         `json:"top_products"`
	PaymentMethods   []repository.PaymentMethodResult   `json:"payment_methods"`
}

// GetStats returns dashboard rollups for [start, end). Growth compares
// revenue against the immediately preceding range of equal length.
func (s *DashboardService) GetStats(ctx context.Context, start, end time.Time) (*DashboardStats, error) {
	if !end.After(start) {
		return nil, apperror.NewBadRequestError("End date must be after start date")
	}

	cacheKey := "dashboard:" + start.UTC().Format(time.RFC3339) + ":" + end.UTC().Format(time.RFC3339)
	if s.cache != nil {
		if raw, ok := s.cache.Get(cacheKey); ok {
			var cached DashboardStats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			log.Warn().Str("key", cacheKey).Msg("discarding unreadable dashboard cache entry")
		}
	}

	summary, err := s.analyticsRepo.GetRevenueSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.SumByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	revenueByDay, err := s.analyticsRepo.GetRevenueByDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	revenueByBarber, err := s.analyticsRepo.GetRevenueByBarber(ctx, start, end)
	if err != nil {
		return nil, err
	}

	topServices, err := s.analyticsRepo.GetTopServices(ctx, start, end, topItemLimit)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, start, end, topItemLimit)
	if err != nil {
		return nil, err
	}

	paymentMethods, err := s.analyticsRepo.GetRevenueByPaymentMethod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	prevStart := start.Add(-end.Sub(start))
	prevSummary, err := s.analyticsRepo.GetRevenueSummary(ctx, prevStart, start)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		PeriodStart:      start,
		PeriodEnd:        end,
		Revenue:          summary.Revenue,
		Commission:       summary.Commission,
		Expenses:         expenses,
		NetProfit:        summary.Revenue.Sub(summary.Commission).Sub(expenses),
		TransactionCount: summary.TransactionCount,
		RevenueGrowth:    growthPercent(summary.Revenue, prevSummary.Revenue),
		RevenueByDay:     revenueByDay,
		RevenueByBarber:  revenueByBarber,
		TopServices:      topServices,
		TopProducts:      topProducts,
		PaymentMethods:   paymentMethods,
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			s.cache.Set(cacheKey, raw, s.cacheTTL)
		}
	}

	return stats, nil
}

// growthPercent returns the percentage change from previous to current. A
// zero previous value yields 100 when current is non-zero, 0 otherwise.
func growthPercent(current, previous money.Money) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	return current.Sub(previous).Float64() / previous.Float64() * 100
}
