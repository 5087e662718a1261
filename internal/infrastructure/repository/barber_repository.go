package repository

import (
	"context"
	"errors"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	domainRepo "github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type barberRepository struct {
	db *gorm.DB
}

// NewBarberRepository creates a new barber repository
func NewBarberRepository(db *gorm.DB) domainRepo.BarberRepository {
	return &barberRepository{db: db}
}

func (r *barberRepository) Create(ctx context.Context, barber *entity.Barber) error {
	return r.db.WithContext(ctx).Create(barber).Error
}

func (r *barberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Barber, error) {
	var barber entity.Barber
	err := r.db.WithContext(ctx).First(&barber, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &barber, err
}

func (r *barberRepository) Update(ctx context.Context, barber *entity.Barber) error {
	return r.db.WithContext(ctx).Save(barber).Error
}

func (r *barberRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Barber{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *barberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Barber{}, "id = ?", id).Error
}

func (r *barberRepository) List(ctx context.Context, params *domainRepo.BarberFilterParams) ([]entity.Barber, int64, error) {
	var barbers []entity.Barber
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Barber{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination != nil {
		params.Pagination.Validate()
		query = query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage)
	}

	err := query.Order("name ASC").Find(&barbers).Error

	return barbers, total, err
}
