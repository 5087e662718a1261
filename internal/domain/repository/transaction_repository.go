package repository

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// TransactionRepository defines the interface for the transaction ledger.
// Transactions are append-only: there is no update or delete.
type TransactionRepository interface {
	// CreateWithStockDecrements persists the transaction with its items and
	// applies the given product stock decrements as one database
	// transaction. Each decrement is a conditional update guarded by
	// "stock >= quantity"; if any product has insufficient stock the whole
	// write is rolled back and the failed product IDs are returned with a
	// nil error. Nothing is partially applied.
	CreateWithStockDecrements(ctx context.Context, txn *entity.Transaction, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)

	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// ListByBarberAndRange returns all transactions for a barber with date
	// in [start, end), without pagination. Used by payroll reconciliation.
	ListByBarberAndRange(ctx context.Context, barberID uuid.UUID, start, end time.Time) ([]entity.Transaction, error)

	CountByBarberID(ctx context.Context, barberID uuid.UUID) (int64, error)
	CountByProductID(ctx context.Context, productID uuid.UUID) (int64, error)
	CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error)
}

// TransactionFilterParams contains filtering parameters for report queries.
// Filters are explicit typed fields; there is no free-form criteria map.
type TransactionFilterParams struct {
	Pagination    *pagination.PaginationParams
	StartDate     *time.Time
	EndDate       *time.Time
	BarberID      *uuid.UUID
	CashierID     *uuid.UUID
	PaymentMethod *enum.PaymentMethod
	Search        string
}
