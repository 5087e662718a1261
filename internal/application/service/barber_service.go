package service

import (
	"context"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/money"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// BarberService manages the barber roster
type BarberService struct {
	barberRepo      repository.BarberRepository
	transactionRepo repository.TransactionRepository
}

func NewBarberService(barberRepo repository.BarberRepository, transactionRepo repository.TransactionRepository) *BarberService {
	return &BarberService{
		barberRepo:      barberRepo,
		transactionRepo: transactionRepo,
	}
}

type BarberInput struct {
	Name             string
	Phone            string
	CommissionRate   money.Money
	BaseSalary       money.Money
	CompensationType enum.CompensationType
}

func (s *BarberService) validate(input *BarberInput) error {
	var fieldErrors []apperror.FieldError

	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if !input.CompensationType.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "compensation_type", Message: "Invalid compensation type"})
	}
	if input.CommissionRate.IsNegative() || input.CommissionRate.Cmp(money.FromInt(1)) > 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "commission_rate", Message: "Commission rate must be between 0 and 1"})
	}
	if input.BaseSalary.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "base_salary", Message: "Base salary must not be negative"})
	}
	if input.CompensationType.Valid() && input.CompensationType.EarnsCommission() && input.CommissionRate.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "commission_rate", Message: "Commission rate is required for this compensation type"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (s *BarberService) Create(ctx context.Context, input *BarberInput) (*entity.Barber, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	barber := &entity.Barber{
		Name:             input.Name,
		Phone:            input.Phone,
		IsActive:         true,
		CommissionRate:   input.CommissionRate,
		BaseSalary:       input.BaseSalary,
		CompensationType: input.CompensationType,
	}

	if err := s.barberRepo.Create(ctx, barber); err != nil {
		return nil, err
	}
	return barber, nil
}

func (s *BarberService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Barber, error) {
	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, apperror.NewNotFoundError("Barber")
	}
	return barber, nil
}

func (s *BarberService) Update(ctx context.Context, id uuid.UUID, input *BarberInput) (*entity.Barber, error) {
	barber, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(input); err != nil {
		return nil, err
	}

	barber.Name = input.Name
	barber.Phone = input.Phone
	barber.CommissionRate = input.CommissionRate
	barber.BaseSalary = input.BaseSalary
	barber.CompensationType = input.CompensationType

	if err := s.barberRepo.Update(ctx, barber); err != nil {
		return nil, err
	}
	return barber, nil
}

func (s *BarberService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Barber, error) {
	barber, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	barber.IsActive = active
	if err := s.barberRepo.Update(ctx, barber); err != nil {
		return nil, err
	}
	return barber, nil
}

// Delete removes a barber from the roster. A barber referenced by
// historical transactions is deactivated instead so commission history
// stays attributable.
func (s *BarberService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.transactionRepo.CountByBarberID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return s.barberRepo.Deactivate(ctx, id)
	}

	return s.barberRepo.Delete(ctx, id)
}

func (s *BarberService) List(ctx context.Context, params *repository.BarberFilterParams) (*pagination.PaginatedResult[entity.Barber], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	barbers, total, err := s.barberRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(barbers,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
