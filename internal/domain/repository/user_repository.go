package repository

import (
	"context"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the interface for operator account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]entity.User, error)
}
