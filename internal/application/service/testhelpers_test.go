package service_test

import (
	"strings"
	"testing"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test so fixtures do not leak
	// between tests.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Barber{},
		&entity.Product{},
		&entity.Service{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.AttendanceEvent{},
		&entity.Expense{},
		&entity.SalaryDebt{},
		&entity.IdempotencyKey{},
	))

	return db
}

func seedBarber(t *testing.T, db *gorm.DB, compType enum.CompensationType, rate, base string) *entity.Barber {
	t.Helper()
	barber := &entity.Barber{
		Name:             "Agus",
		IsActive:         true,
		CommissionRate:   money.MustParse(rate),
		BaseSalary:       money.MustParse(base),
		CompensationType: compType,
	}
	require.NoError(t, db.Create(barber).Error)
	return barber
}

func seedCashier(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	user := &entity.User{
		Name:     "Kasir",
		Email:    "kasir@example.com",
		Password: "hashed",
		Role:     enum.RoleCashier,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, sellPrice string, stock int) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:      name,
		BuyPrice:  money.MustParse("0"),
		SellPrice: money.MustParse(sellPrice),
		Stock:     stock,
		IsActive:  true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedService(t *testing.T, db *gorm.DB, name, price string) *entity.Service {
	t.Helper()
	svc := &entity.Service{
		Name:     name,
		Price:    money.MustParse(price),
		IsActive: true,
	}
	require.NoError(t, db.Create(svc).Error)
	return svc
}
