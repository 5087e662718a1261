package service_test

import (
	"context"
	"testing"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/infrastructure/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *service.CatalogService {
	return service.NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewServiceRepository(db),
		repository.NewTransactionRepository(db),
		5,
	)
}

func TestProductCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	product, err := svc.CreateProduct(context.Background(), &service.ProductInput{
		Name:      "Pomade",
		BuyPrice:  money.MustParse("30000"),
		SellPrice: money.MustParse("50000"),
		Stock:     10,
	})
	require.NoError(t, err)

	fetched, err := svc.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pomade", fetched.Name)
	assert.Equal(t, "50000", fetched.SellPrice.String())
	assert.Equal(t, 10, fetched.Stock)
}

func TestProductValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.CreateProduct(context.Background(), &service.ProductInput{
		Name:      "",
		BuyPrice:  money.MustParse("-1"),
		SellPrice: money.MustParse("-1"),
		Stock:     -1,
	})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 4)
}

func TestProductDeleteWithHistoryDeactivates(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	pomade := seedProduct(t, db, "Pomade", "50000", 10)

	checkout := newCheckoutService(db)
	_, err := checkout.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemProduct, ItemID: pomade.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), pomade.ID))

	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", pomade.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestProductDeleteWithoutHistoryIsHard(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	pomade := seedProduct(t, db, "Pomade", "50000", 10)

	require.NoError(t, svc.DeleteProduct(context.Background(), pomade.ID))

	_, err := svc.GetProduct(context.Background(), pomade.ID)
	require.Error(t, err)
}

func TestLowStockProducts(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	seedProduct(t, db, "Pomade", "50000", 3)
	seedProduct(t, db, "Wax", "40000", 20)
	depleted := seedProduct(t, db, "Tonic", "60000", 2)
	require.NoError(t, db.Model(depleted).Update("is_active", false).Error)

	low, err := svc.ListLowStockProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, low, 1)
	assert.Equal(t, "Pomade", low[0].Name)
}

func TestServiceCreateUpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	created, err := svc.CreateService(context.Background(), &service.ServiceInput{
		Name:  "Haircut",
		Price: money.MustParse("100000"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateService(context.Background(), created.ID, &service.ServiceInput{
		Name:  "Haircut Premium",
		Price: money.MustParse("150000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut Premium", updated.Name)

	require.NoError(t, svc.DeleteService(context.Background(), created.ID))
	_, err = svc.GetService(context.Background(), created.ID)
	require.Error(t, err)
}

func TestServiceDeleteWithHistoryDeactivates(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	barber := seedBarber(t, db, enum.CompensationCommissionOnly, "0.4", "0")
	cashier := seedCashier(t, db)
	haircut := seedService(t, db, "Haircut", "100000")

	checkout := newCheckoutService(db)
	_, err := checkout.Checkout(context.Background(), &service.CheckoutInput{
		CashierID:     cashier.ID,
		BarberID:      barber.ID,
		PaymentMethod: enum.PaymentCash,
		Items: []service.CheckoutItemInput{
			{ItemType: enum.ItemService, ItemID: haircut.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteService(context.Background(), haircut.ID))

	var stored entity.Service
	require.NoError(t, db.First(&stored, "id = ?", haircut.ID).Error)
	assert.False(t, stored.IsActive)
}
