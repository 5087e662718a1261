package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/infrastructure/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *service.AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return service.NewAuthService(repository.NewUserRepository(db), jwtManager)
}

func TestRegisterFirstUserBecomesOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	result, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Owner",
		Email:    "Owner@Example.com",
		Password: "secret123",
		Role:     enum.RoleCashier, // ignored for the bootstrap account
	})

	require.NoError(t, err)
	assert.Equal(t, enum.RoleOwner, result.User.Role)
	assert.Equal(t, "owner@example.com", result.User.Email)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
}

func TestRegisterSecondUserNeedsOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Unauthenticated second registration is refused.
	_, err = svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Kasir",
		Email:    "kasir@example.com",
		Password: "secret123",
		Role:     enum.RoleCashier,
	})
	require.Error(t, err)

	// A cashier cannot create accounts either.
	cashierRole := enum.RoleCashier
	_, err = svc.Register(context.Background(), &service.RegisterInput{
		Name:        "Kasir",
		Email:       "kasir@example.com",
		Password:    "secret123",
		Role:        enum.RoleCashier,
		CreatorRole: &cashierRole,
	})
	require.Error(t, err)

	// The owner can.
	ownerRole := enum.RoleOwner
	result, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:        "Kasir",
		Email:       "kasir@example.com",
		Password:    "secret123",
		Role:        enum.RoleCashier,
		CreatorRole: &ownerRole,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.RoleCashier, result.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	ownerRole := enum.RoleOwner
	_, err = svc.Register(context.Background(), &service.RegisterInput{
		Name:        "Dup",
		Email:       "OWNER@example.com",
		Password:    "secret123",
		Role:        enum.RoleCashier,
		CreatorRole: &ownerRole,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "owner@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Tokens.AccessToken)

	_, err = svc.Login(context.Background(), "owner@example.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(context.Background(), &service.RegisterInput{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), registered.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
