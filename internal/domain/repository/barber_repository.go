package repository

import (
	"context"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// BarberRepository defines the interface for barber data operations
type BarberRepository interface {
	Create(ctx context.Context, barber *entity.Barber) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Barber, error)
	Update(ctx context.Context, barber *entity.Barber) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BarberFilterParams) ([]entity.Barber, int64, error)
}

// BarberFilterParams contains filtering parameters for barber queries
type BarberFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
}
