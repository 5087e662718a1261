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

type salaryDebtRepository struct {
	db *gorm.DB
}

// NewSalaryDebtRepository creates a new salary debt repository
func NewSalaryDebtRepository(db *gorm.DB) domainRepo.SalaryDebtRepository {
	return &salaryDebtRepository{db: db}
}

func (r *salaryDebtRepository) Create(ctx context.Context, debt *entity.SalaryDebt) error {
	return r.db.WithContext(ctx).Create(debt).Error
}

func (r *salaryDebtRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalaryDebt, error) {
	var debt entity.SalaryDebt
	err := r.db.WithContext(ctx).First(&debt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &debt, err
}

func (r *salaryDebtRepository) ListUnpaidByBarber(ctx context.Context, barberID uuid.UUID) ([]entity.SalaryDebt, error) {
	var debts []entity.SalaryDebt
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND paid_at IS NULL", barberID).
		Order("created_at ASC").
		Find(&debts).Error
	return debts, err
}

func (r *salaryDebtRepository) List(ctx context.Context, params *domainRepo.SalaryDebtFilterParams) ([]entity.SalaryDebt, int64, error) {
	var debts []entity.SalaryDebt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SalaryDebt{})

	if params.BarberID != nil {
		query = query.Where("barber_id = ?", *params.BarberID)
	}

	if params.UnpaidOnly {
		query = query.Where("paid_at IS NULL")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&debts).Error

	return debts, total, err
}

func (r *salaryDebtRepository) MarkPaid(ctx context.Context, ids []uuid.UUID, paidAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.SalaryDebt{}).
		Where("id IN ? AND paid_at IS NULL", ids).
		Update("paid_at", paidAt).Error
}
