package service

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// ExpenseService manages the back-office expense ledger
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

type ExpenseInput struct {
	Title    string
	Amount   money.Money
	Date     time.Time
	Category enum.ExpenseCategory
}

func validateExpenseInput(input *ExpenseInput) error {
	var fieldErrors []apperror.FieldError

	if input.Title == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "title", Message: "Title is required"})
	}
	if !input.Amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "Amount must be positive"})
	}
	if input.Date.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "Date is required"})
	}
	if !input.Category.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "category", Message: "Invalid category"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, input *ExpenseInput) (*entity.Expense, error) {
	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		Title:    input.Title,
		Amount:   input.Amount,
		Date:     input.Date,
		Category: input.Category,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateExpenseInput(input); err != nil {
		return nil, err
	}

	expense.Title = input.Title
	expense.Amount = input.Amount
	expense.Date = input.Date
	expense.Category = input.Category

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}

func (s *ExpenseService) List(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(expenses,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
