package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/infrastructure/cache"
	"github.com/ardani17/barber-sub001/internal/infrastructure/repository"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB, c cache.Cache) *service.DashboardService {
	return service.NewDashboardService(
		repository.NewAnalyticsRepository(db),
		repository.NewExpenseRepository(db),
		c,
		time.Minute,
	)
}

func TestDashboardEmptyRange(t *testing.T) {
	db := setupTestDB(t)
	start, end := payrollPeriod()

	svc := newDashboardService(db, nil)
	stats, err := svc.GetStats(context.Background(), start, end)

	require.NoError(t, err)
	assert.True(t, stats.Revenue.IsZero())
	assert.True(t, stats.NetProfit.IsZero())
	assert.Zero(t, stats.TransactionCount)
	assert.Zero(t, stats.RevenueGrowth)

	// The daily series still covers the range, one zero point per day.
	require.Len(t, stats.RevenueByDay, 31)
	assert.Equal(t, "2025-03-01", stats.RevenueByDay[0].Date)
	assert.Equal(t, "2025-03-31", stats.RevenueByDay[30].Date)
	for _, point := range stats.RevenueByDay {
		assert.True(t, point.Revenue.IsZero())
	}

	assert.Empty(t, stats.RevenueByBarber)
	assert.Empty(t, stats.TopServices)
	assert.Empty(t, stats.TopProducts)
}

func TestDashboardRollups(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	start, end := payrollPeriod()

	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 3), "300000", "120000")
	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 7), "200000", "80000")

	expense := &entity.Expense{
		Title:    "Electricity",
		Amount:   money.MustParse("100000"),
		Date:     start.AddDate(0, 0, 4),
		Category: enum.ExpenseUtilities,
	}
	require.NoError(t, db.Create(expense).Error)

	svc := newDashboardService(db, nil)
	stats, err := svc.GetStats(context.Background(), start, end)

	require.NoError(t, err)
	assert.Equal(t, "500000", stats.Revenue.String())
	assert.Equal(t, "200000", stats.Commission.String())
	assert.Equal(t, "100000", stats.Expenses.String())
	assert.Equal(t, "200000", stats.NetProfit.String())
	assert.Equal(t, int64(2), stats.TransactionCount)
	// No revenue in the preceding period, so growth reports 100.
	assert.Equal(t, float64(100), stats.RevenueGrowth)

	require.Len(t, stats.RevenueByBarber, 1)
	assert.Equal(t, barber.Name, stats.RevenueByBarber[0].BarberName)
}

func TestDashboardGrowthAgainstPreviousPeriod(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	start, end := payrollPeriod()
	prevStart := start.Add(-end.Sub(start))

	seedTransaction(t, db, barber.ID, cashier.ID, prevStart.AddDate(0, 0, 3), "100000", "40000")
	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 3), "150000", "60000")

	svc := newDashboardService(db, nil)
	stats, err := svc.GetStats(context.Background(), start, end)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, stats.RevenueGrowth, 0.01)
}

func TestDashboardCachesResult(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	start, end := payrollPeriod()

	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 3), "100000", "40000")

	memCache := cache.NewMemoryCache(time.Minute)
	svc := newDashboardService(db, memCache)

	first, err := svc.GetStats(context.Background(), start, end)
	require.NoError(t, err)

	// A write after the first read must not show up until invalidation.
	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 4), "100000", "40000")

	second, err := svc.GetStats(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, first.Revenue.String(), second.Revenue.String())

	memCache.DeletePattern("dashboard:*")

	third, err := svc.GetStats(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, "200000", third.Revenue.String())
}

func TestDashboardRejectsInvertedRange(t *testing.T) {
	db := setupTestDB(t)
	start, end := payrollPeriod()

	svc := newDashboardService(db, nil)
	_, err := svc.GetStats(context.Background(), end, start)
	require.Error(t, err)
}

func TestDashboardTopItems(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	haircut := seedService(t, db, "Haircut", "100000")
	pomade := seedProduct(t, db, "Pomade", "50000", 10)

	checkout := newCheckoutService(db)
	_, err := checkout.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemService, ItemID: haircut.ID, Quantity: 1},
			{ItemType: enum.ItemProduct, ItemID: pomade.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// The checkout above is stamped with the current time.
	svc := newDashboardService(db, nil)
	stats, err := svc.GetStats(context.Background(), time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, stats.TopServices, 1)
	assert.Equal(t, "Haircut", stats.TopServices[0].Name)
	require.Len(t, stats.TopProducts, 1)
	assert.Equal(t, "Pomade", stats.TopProducts[0].Name)
	assert.Equal(t, 2, stats.TopProducts[0].QuantitySold)
}
