package service

import (
	"context"
	"strings"

	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/pkg/apperror"
	"github.com/ardani17/barber-sub001/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles operator authentication and account provisioning
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     enum.Role
	// CreatorRole is the role of the authenticated caller, nil for an
	// unauthenticated request.
	CreatorRole *enum.Role
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResult struct {
	User   *entity.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// Register creates an operator account. The first account ever created
// becomes the owner and needs no authentication; every later account must
// be created by an owner.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if count == 0 {
		role = enum.RoleOwner
	} else {
		if input.CreatorRole == nil || *input.CreatorRole != enum.RoleOwner {
			return nil, apperror.NewForbiddenError("Only the owner can create accounts")
		}
		if !role.Valid() {
			return nil, apperror.NewBadRequestError("Invalid role")
		}
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalServerError(err)
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*AuthResult, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperror.NewInternalServerError(err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, apperror.NewInternalServerError(err)
	}

	return &AuthResult{
		User: user,
		Tokens: TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}
