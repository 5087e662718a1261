package service

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// DebtService manages barber salary debts (advances and deductions)
type DebtService struct {
	debtRepo   repository.SalaryDebtRepository
	barberRepo repository.BarberRepository
}

func NewDebtService(debtRepo repository.SalaryDebtRepository, barberRepo repository.BarberRepository) *DebtService {
	return &DebtService{
		debtRepo:   debtRepo,
		barberRepo: barberRepo,
	}
}

type DebtInput struct {
	BarberID uuid.UUID
	Amount   money.Money
	Reason   string
}

func (s *DebtService) Create(ctx context.Context, input *DebtInput) (*entity.SalaryDebt, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount must be positive"},
		})
	}

	barber, err := s.barberRepo.GetByID(ctx, input.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, apperror.NewNotFoundError("Barber")
	}

	debt := &entity.SalaryDebt{
		BarberID: input.BarberID,
		Amount:   input.Amount,
		Reason:   input.Reason,
	}

	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

// MarkPaid settles a single debt outside payroll, e.g. a cash repayment
func (s *DebtService) MarkPaid(ctx context.Context, id uuid.UUID) (*entity.SalaryDebt, error) {
	debt, err := s.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, apperror.NewNotFoundError("Salary debt")
	}
	if debt.IsPaid() {
		return nil, apperror.NewConflictError("Debt is already paid")
	}

	if err := s.debtRepo.MarkPaid(ctx, []uuid.UUID{id}, time.Now()); err != nil {
		return nil, err
	}

	return s.debtRepo.GetByID(ctx, id)
}

func (s *DebtService) List(ctx context.Context, params *repository.SalaryDebtFilterParams) (*pagination.PaginatedResult[entity.SalaryDebt], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	debts, total, err := s.debtRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(debts,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
