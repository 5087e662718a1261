package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	domainRepo "github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// errStockConflict aborts the enclosing gorm transaction when a conditional
// stock decrement affects zero rows.
var errStockConflict = errors.New("stock conflict")

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateWithStockDecrements persists the transaction, its items, and the
// stock decrements as one database transaction. The decrement is expressed
// as "UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?" so
// two concurrent checkouts can never both observe pre-decrement stock.
func (r *transactionRepository) CreateWithStockDecrements(ctx context.Context, txn *entity.Transaction, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, qty := range decrements {
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ?", id, qty).
				Update("stock", gorm.Expr("stock - ?", qty))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return errStockConflict
		}

		return tx.Create(txn).Error
	})

	if errors.Is(err, errStockConflict) {
		return failedIDs, nil
	}

	return nil, err
}

func (r *transactionRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Barber").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if params.StartDate != nil {
		query = query.Where("transactions.date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("transactions.date < ?", *params.EndDate)
	}

	if params.BarberID != nil {
		query = query.Where("transactions.barber_id = ?", *params.BarberID)
	}

	if params.CashierID != nil {
		query = query.Where("transactions.cashier_id = ?", *params.CashierID)
	}

	if params.PaymentMethod != nil {
		query = query.Where("transactions.payment_method = ?", *params.PaymentMethod)
	}

	if params.Search != "" {
		query = query.
			Joins("JOIN barbers ON barbers.id = transactions.barber_id").
			Where("barbers.name ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Preload("Barber").
		Order("transactions.date DESC").
		Find(&transactions).Error

	return transactions, total, err
}

func (r *transactionRepository) ListByBarberAndRange(ctx context.Context, barberID uuid.UUID, start, end time.Time) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date >= ? AND date < ?", barberID, start, end).
		Order("date ASC").
		Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepository) CountByBarberID(ctx context.Context, barberID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("barber_id = ?", barberID).
		Count(&count).Error
	return count, err
}

func (r *transactionRepository) CountByProductID(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TransactionItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

func (r *transactionRepository) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TransactionItem{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error
	return count, err
}
