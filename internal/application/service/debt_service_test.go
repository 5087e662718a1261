package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	domainRepo "github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/infrastructure/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDebtService(db *gorm.DB) *service.DebtService {
	return service.NewDebtService(
		repository.NewSalaryDebtRepository(db),
		repository.NewBarberRepository(db),
	)
}

func TestDebtCreate(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBaseOnly, "0", "1000000")
	svc := newDebtService(db)

	debt, err := svc.Create(context.Background(), &service.DebtInput{
		BarberID: barber.ID,
		Amount:   money.MustParse("150000"),
		Reason:   "kasbon",
	})

	require.NoError(t, err)
	assert.False(t, debt.IsPaid())
	assert.Equal(t, "150000", debt.Amount.String())
}

func TestDebtCreateRejectsNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBaseOnly, "0", "1000000")
	svc := newDebtService(db)

	_, err := svc.Create(context.Background(), &service.DebtInput{
		BarberID: barber.ID,
		Amount:   money.MustParse("0"),
	})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), &service.DebtInput{
		BarberID: barber.ID,
		Amount:   money.MustParse("-100"),
	})
	require.Error(t, err)
}

func TestDebtCreateUnknownBarber(t *testing.T) {
	db := setupTestDB(t)
	svc := newDebtService(db)

	_, err := svc.Create(context.Background(), &service.DebtInput{
		BarberID: uuid.New(),
		Amount:   money.MustParse("100"),
	})
	require.Error(t, err)
}

func TestDebtMarkPaid(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBaseOnly, "0", "1000000")
	debt := seedDebt(t, db, barber.ID, "150000", time.Now())
	svc := newDebtService(db)

	paid, err := svc.MarkPaid(context.Background(), debt.ID)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid())

	// Paying twice conflicts.
	_, err = svc.MarkPaid(context.Background(), debt.ID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestDebtListUnpaidOnly(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBaseOnly, "0", "1000000")
	paid := seedDebt(t, db, barber.ID, "100000", time.Now())
	seedDebt(t, db, barber.ID, "200000", time.Now())
	now := time.Now()
	require.NoError(t, db.Model(paid).Update("paid_at", &now).Error)

	svc := newDebtService(db)
	result, err := svc.List(context.Background(), &domainRepo.SalaryDebtFilterParams{UnpaidOnly: true})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "200000", result.Items[0].Amount.String())
}
