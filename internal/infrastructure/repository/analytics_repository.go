package repository

import (
	"context"
	"time"

	domainRepo "github.com/ardani17/barber-sub001/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetRevenueSummary(ctx context.Context, start, end time.Time) (*domainRepo.RevenueSummary, error) {
	var summary domainRepo.RevenueSummary

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0) as revenue,
			COALESCE(SUM(total_commission), 0) as commission,
			COUNT(id) as transaction_count
		FROM transactions
		WHERE date >= ? AND date < ?
	`, start, end).Scan(&summary).Error

	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// GetRevenueByDay returns one point per calendar day in [start, end). Days
// with no transactions yield a zero-revenue point, not a gap.
func (r *analyticsRepository) GetRevenueByDay(ctx context.Context, start, end time.Time) ([]domainRepo.DailyRevenuePoint, error) {
	var points []domainRepo.DailyRevenuePoint

	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		if next.After(end) {
			next = end
		}

		var point domainRepo.DailyRevenuePoint
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total_amount), 0) as revenue
			FROM transactions
			WHERE date >= ? AND date < ?
		`, day, next).Scan(&point).Error
		if err != nil {
			return nil, err
		}

		point.Date = day.Format("2006-01-02")
		points = append(points, point)
	}

	return points, nil
}

func (r *analyticsRepository) GetRevenueByBarber(ctx context.Context, start, end time.Time) ([]domainRepo.BarberRevenueResult, error) {
	var results []domainRepo.BarberRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			b.id as barber_id,
			b.name as barber_name,
			COALESCE(SUM(t.total_amount), 0) as revenue,
			COALESCE(SUM(t.total_commission), 0) as commission
		FROM transactions t
		JOIN barbers b ON b.id = t.barber_id
		WHERE t.date >= ? AND t.date < ?
		GROUP BY b.id, b.name
		ORDER BY revenue DESC
	`, start, end).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetTopServices(ctx context.Context, start, end time.Time, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.service_id as ref_id,
			i.name as name,
			COALESCE(SUM(i.quantity), 0) as quantity_sold,
			COALESCE(SUM(i.subtotal), 0) as revenue
		FROM transaction_items i
		JOIN transactions t ON t.id = i.transaction_id
		WHERE i.item_type = 'SERVICE' AND t.date >= ? AND t.date < ?
		GROUP BY i.service_id, i.name
		ORDER BY revenue DESC
		LIMIT ?
	`, start, end, limit).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]domainRepo.TopItemResult, error) {
	var results []domainRepo.TopItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			i.product_id as ref_id,
			i.name as name,
			COALESCE(SUM(i.quantity), 0) as quantity_sold,
			COALESCE(SUM(i.subtotal), 0) as revenue
		FROM transaction_items i
		JOIN transactions t ON t.id = i.transaction_id
		WHERE i.item_type = 'PRODUCT' AND t.date >= ? AND t.date < ?
		GROUP BY i.product_id, i.name
		ORDER BY revenue DESC
		LIMIT ?
	`, start, end, limit).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetRevenueByPaymentMethod(ctx context.Context, start, end time.Time) ([]domainRepo.PaymentMethodResult, error) {
	var results []domainRepo.PaymentMethodResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COALESCE(SUM(total_amount), 0) as revenue,
			COUNT(id) as transaction_count
		FROM transactions
		WHERE date >= ? AND date < ?
		GROUP BY payment_method
		ORDER BY revenue DESC
	`, start, end).Scan(&results).Error

	return results, err
}
