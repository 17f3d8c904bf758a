package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scribe/internal/auth"
	apperrors "scribe/internal/errors"
	"scribe/internal/repository"
	"scribe/internal/validation"
)

// AuthService handles the anonymous -> authenticated transition.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a bearer token. Both an unknown
// email and a wrong password surface as a 422 validation error on the
// email field rather than a 401.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.NewValidationError("email", validation.MsgSelectedInvalid("email"))
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.NewValidationError("email", validation.MsgCredentials)
	}

	return s.jwtService.GenerateToken(user.ID, user.Email)
}
