package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	domainRepo "github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionGetByID(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	haircut := seedService(t, db, "Haircut", "100000")

	checkout := newCheckoutService(db)
	created, err := checkout.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemService, ItemID: haircut.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	svc := service.NewTransactionService(repository.NewTransactionRepository(db))
	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Haircut", fetched.Items[0].Name)

	_, err = svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestTransactionSearchFilters(t *testing.T) {
	db := setupTestDB(t)
	barberA := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	barberB := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	now := time.Now()

	seedTransaction(t, db, barberA.ID, cashier.ID, now, "100000", "40000")
	seedTransaction(t, db, barberB.ID, cashier.ID, now, "200000", "80000")

	svc := service.NewTransactionService(repository.NewTransactionRepository(db))
	result, err := svc.Search(context.Background(), &domainRepo.TransactionFilterParams{
		BarberID: &barberA.ID,
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "100000", result.Items[0].TotalAmount.String())
}

func TestTransactionSearchRejectsInvertedRange(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewTransactionService(repository.NewTransactionRepository(db))

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -5)
	_, err := svc.Search(context.Background(), &domainRepo.TransactionFilterParams{
		StartDate: &start,
		EndDate:   &end,
	})
	require.Error(t, err)
}
