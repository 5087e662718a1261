package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/entity"
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

func newCheckoutService(db *gorm.DB) *service.CheckoutService {
	return service.NewCheckoutService(
		repository.NewTransactionRepository(db),
		repository.NewProductRepository(db),
		repository.NewServiceRepository(db),
		repository.NewBarberRepository(db),
		nil,
	)
}

func TestCheckoutServiceCommission(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	haircut := seedService(t, db, "Haircut", "100000")

	svc := newCheckoutService(db)
	txn, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemService, ItemID: haircut.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "100000", txn.TotalAmount.String())
	assert.Equal(t, "40000", txn.TotalCommission.String())
	require.Len(t, txn.Items, 1)
	assert.Equal(t, "Haircut", txn.Items[0].Name)
	assert.Equal(t, "100000", txn.Items[0].Subtotal.String())
}

func TestCheckoutServiceBaseOnlyEarnsNoCommission(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBaseOnly, "0", "2000000")
	cashier := seedCashier(t, db)
	haircut := seedService(t, db, "Haircut", "100000")

	svc := newCheckoutService(db)
	txn, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentQris,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemService, ItemID: haircut.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.True(t, txn.TotalCommission.IsZero())
}

func TestCheckoutServiceDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	pomade := seedProduct(t, db, "Pomade", "50000", 10)

	svc := newCheckoutService(db)
	txn, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemProduct, ItemID: pomade.ID, Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "100000", txn.TotalAmount.String())

	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", pomade.ID).Error)
	assert.Equal(t, 8, stored.Stock)
}

func TestCheckoutServiceInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	pomade := seedProduct(t, db, "Pomade", "50000", 1)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemProduct, ItemID: pomade.ID, Quantity: 3},
		},
	})

	var stockErr *apperror.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Pomade", stockErr.ItemName)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	// Nothing was written.
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", pomade.ID).Error)
	assert.Equal(t, 1, stored.Stock)

	var count int64
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateWithStockDecrementsRefusesOversell(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	pomade := seedProduct(t, db, "Pomade", "50000", 1)

	repo := repository.NewTransactionRepository(db)
	txn := &entity.Transaction{
		Date:            time.Now(),
		CashierID:       cashier.ID,
		BarberID:        barber.ID,
		PaymentMethod:   enum.PaymentCash,
		TotalAmount:     money.MustParse("100000"),
		TotalCommission: money.MustParse("40000"),
	}

	failedIDs, err := repo.CreateWithStockDecrements(context.Background(), txn, map[uuid.UUID]int{pomade.ID: 2})

	require.NoError(t, err)
	require.Len(t, failedIDs, 1)
	assert.Equal(t, pomade.ID, failedIDs[0])

	// The whole write rolled back: stock untouched, no transaction rows.
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", pomade.ID).Error)
	assert.Equal(t, 1, stored.Stock)

	var count int64
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

// lastUnitSoldProductRepo sells one unit of every product it returns right
// after reading it, so the caller's snapshot is stale by the time it writes.
type lastUnitSoldProductRepo struct {
	domainRepo.ProductRepository
	db *gorm.DB
}

func (r *lastUnitSoldProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	products, err := r.ProductRepository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		err := r.db.Model(&entity.Product{}).
			Where("id = ?", p.ID).
			Update("stock", gorm.Expr("stock - ?", 1)).Error
		if err != nil {
			return nil, err
		}
	}
	return products, nil
}

func TestCheckoutServiceLosesRaceForLastUnit(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	pomade := seedProduct(t, db, "Pomade", "50000", 1)

	svc := service.NewCheckoutService(
		repository.NewTransactionRepository(db),
		&lastUnitSoldProductRepo{ProductRepository: repository.NewProductRepository(db), db: db},
		repository.NewServiceRepository(db),
		repository.NewBarberRepository(db),
		nil,
	)

	// The snapshot shows one unit so the pre-check passes, but a competing
	// checkout takes it before the write lands.
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemProduct, ItemID: pomade.ID, Quantity: 1},
		},
	})

	var stockErr *apperror.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Pomade", stockErr.ItemName)
	assert.Equal(t, 1, stockErr.Requested)

	// The winning sale keeps its unit; the loser wrote nothing.
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", pomade.ID).Error)
	assert.Equal(t, 0, stored.Stock)

	var count int64
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutServiceMixedCart(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationBoth, "0.1", "1000000")
	cashier := seedCashier(t, db)
	haircut := seedService(t, db, "Haircut", "100000")
	pomade := seedProduct(t, db, "Pomade", "50000", 5)

	svc := newCheckoutService(db)
	txn, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentTransfer,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemService, ItemID: haircut.ID, Quantity: 1},
			{ItemType: enum.ItemProduct, ItemID: pomade.ID, Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "200000", txn.TotalAmount.String())
	assert.Equal(t, "20000", txn.TotalCommission.String())
	require.Len(t, txn.Items, 2)
}

func TestCheckoutServiceInactiveBarberRejected(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	require.NoError(t, db.Model(barber).Update("is_active", false).Error)
	cashier := seedCashier(t, db)
	haircut := seedService(t, db, "Haircut", "100000")

	svc := newCheckoutService(db)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemService, ItemID: haircut.ID, Quantity: 1},
		},
	})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
}

func TestCheckoutServiceEmptyCartRejected(t *testing.T) {
	db := setupTestDB(t)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
	})

	require.Error(t, err)
}
