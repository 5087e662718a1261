package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/infrastructure/repository"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPayrollService(db *gorm.DB) *service.PayrollService {
	return service.NewPayrollService(
		repository.NewBarberRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewSalaryDebtRepository(db),
	)
}

func seedTransaction(t *testing.T, db *gorm.DB, barberID uuid.UUID, cashierID uuid.UUID, date time.Time, total, commission string) {
	t.Helper()
	txn := &entity.Transaction{
		Date:            date,
		CashierID:       cashierID,
		BarberID:        barberID,
		PaymentMethod:   enum.PaymentCash,
		TotalAmount:     money.MustParse(total),
		TotalCommission: money.MustParse(commission),
	}
	require.NoError(t, db.Create(txn).Error)
}

func seedDebt(t *testing.T, db *gorm.DB, barberID uuid.UUID, amount string, createdAt time.Time) *entity.SalaryDebt {
	t.Helper()
	debt := &entity.SalaryDebt{
		BarberID: barberID,
		Amount:   money.MustParse(amount),
		Reason:   "advance",
	}
	require.NoError(t, db.Create(debt).Error)
	// Create sets its own timestamp; force ordering explicitly.
	require.NoError(t, db.Model(debt).Update("created_at", createdAt).Error)
	debt.CreatedAt = createdAt
	return debt
}

func payrollPeriod() (time.Time, time.Time) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func TestReconcileBaseAndCommissionMinusDebt(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBoth, "0.2", "1000000")
	cashier := seedCashier(t, db)
	start, end := payrollPeriod()

	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 5), "500000", "100000")
	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 10), "500000", "100000")
	seedDebt(t, db, barber.ID, "150000", start.AddDate(0, 0, 2))

	svc := newPayrollService(db)
	statement, err := svc.Reconcile(context.Background(), barber.ID, start, end)

	require.NoError(t, err)
	assert.Equal(t, "1000000", statement.BaseSalary.String())
	assert.Equal(t, "200000", statement.CommissionTotal.String())
	assert.Equal(t, 2, statement.TransactionCount)
	assert.Equal(t, "150000", statement.DebtTotal.String())
	assert.Equal(t, "1050000", statement.PayableAmount.String())
	require.Len(t, statement.UnpaidDebts, 1)
}

func TestReconcilePayableFlooredAtZero(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.2", "0")
	cashier := seedCashier(t, db)
	start, end := payrollPeriod()

	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 5), "100000", "20000")
	seedDebt(t, db, barber.ID, "500000", start.AddDate(0, 0, 1))

	svc := newPayrollService(db)
	statement, err := svc.Reconcile(context.Background(), barber.ID, start, end)

	require.NoError(t, err)
	assert.True(t, statement.PayableAmount.IsZero())
	assert.Equal(t, "500000", statement.DebtTotal.String())
}

func TestReconcileExcludesTransactionsOutsidePeriod(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.2", "0")
	cashier := seedCashier(t, db)
	start, end := payrollPeriod()

	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, 5), "100000", "20000")
	seedTransaction(t, db, barber.ID, cashier.ID, end.AddDate(0, 0, 1), "100000", "20000")
	seedTransaction(t, db, barber.ID, cashier.ID, start.AddDate(0, 0, -1), "100000", "20000")

	svc := newPayrollService(db)
	statement, err := svc.Reconcile(context.Background(), barber.ID, start, end)

	require.NoError(t, err)
	assert.Equal(t, 1, statement.TransactionCount)
	assert.Equal(t, "20000", statement.CommissionTotal.String())
}

func TestPayoutSettlesDebtsOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBaseOnly, "0", "500000")
	start, end := payrollPeriod()

	oldest := seedDebt(t, db, barber.ID, "300000", start.AddDate(0, 0, 1))
	newer := seedDebt(t, db, barber.ID, "300000", start.AddDate(0, 0, 2))

	svc := newPayrollService(db)
	_, err := svc.Payout(context.Background(), barber.ID, start, end)
	require.NoError(t, err)

	// Earnings of 500000 cover the first 300000 debt in full; the second
	// would need 300000 more and stays outstanding.
	var stored entity.SalaryDebt
	require.NoError(t, db.First(&stored, "id = ?", oldest.ID).Error)
	assert.NotNil(t, stored.PaidAt)

	var storedNewer entity.SalaryDebt
	require.NoError(t, db.First(&storedNewer, "id = ?", newer.ID).Error)
	assert.Nil(t, storedNewer.PaidAt)
}

func TestPayoutLeavesUncoveredDebtUntouched(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBaseOnly, "0", "100000")
	start, end := payrollPeriod()

	debt := seedDebt(t, db, barber.ID, "250000", start.AddDate(0, 0, 1))

	svc := newPayrollService(db)
	statement, err := svc.Payout(context.Background(), barber.ID, start, end)
	require.NoError(t, err)
	assert.True(t, statement.PayableAmount.IsZero())

	var stored entity.SalaryDebt
	require.NoError(t, db.First(&stored, "id = ?", debt.ID).Error)
	assert.Nil(t, stored.PaidAt)
}

func TestReconcileAllCoversActiveBarbersOnly(t *testing.T) {
	db := setupTestDB(t)
	active := seedBarber(t, db, enum.CompensationBaseOnly, "0", "500000")
	inactive := seedBarber(t, db, enum.CompensationBaseOnly, "0", "500000")
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)
	start, end := payrollPeriod()

	svc := newPayrollService(db)
	statements, err := svc.ReconcileAll(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, active.ID, statements[0].BarberID)
}

func TestReconcileUnknownBarber(t *testing.T) {
	db := setupTestDB(t)
	start, end := payrollPeriod()

	svc := newPayrollService(db)
	_, err := svc.Reconcile(context.Background(), uuid.New(), start, end)
	require.Error(t, err)
}
