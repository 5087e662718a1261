package repository

import (
	"context"
	"time"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// SalaryDebtRepository defines the interface for barber salary debt entries
type SalaryDebtRepository interface {
	Create(ctx context.Context, debt *entity.SalaryDebt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalaryDebt, error)
	ListUnpaidByBarber(ctx context.Context, barberID uuid.UUID) ([]entity.SalaryDebt, error)
	List(ctx context.Context, params *SalaryDebtFilterParams) ([]entity.SalaryDebt, int64, error)
	// MarkPaid sets PaidAt for the given debts. Only unpaid rows are touched.
	MarkPaid(ctx context.Context, ids []uuid.UUID, paidAt time.Time) error
}

// SalaryDebtFilterParams contains filtering parameters for debt queries
type SalaryDebtFilterParams struct {
	Pagination *pagination.PaginationParams
	BarberID   *uuid.UUID
	UnpaidOnly bool
}
