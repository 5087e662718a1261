package service

import (
	"context"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// TransactionService serves read-only queries over the transaction ledger.
// Writes go through CheckoutService only.
type TransactionService struct {
	transactionRepo repository.TransactionRepository
}

func NewTransactionService(transactionRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.transactionRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// Search filters the ledger by date range, barber, cashier, payment method
// and item name.
func (s *TransactionService) Search(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	if params.StartDate != nil && params.EndDate != nil && params.EndDate.Before(*params.StartDate) {
		return nil, apperror.NewBadRequestError("End date must not be before start date")
	}

	transactions, total, err := s.transactionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(transactions,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
