package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scribe/internal/auth"
	apperrors "scribe/internal/errors"
	"scribe/internal/model"
	"scribe/internal/repository"
	"scribe/internal/validation"
)

const bcryptCost = 10

// CreateUserInput carries the validated fields for user creation.
// SkipBreachCheck is set for precognitive dry-runs.
type CreateUserInput struct {
	Name            string
	Email           string
	Password        string
	SkipBreachCheck bool
}

// UserService exposes user domain operations. Registration and the
// authenticated create endpoint share Create.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, user *model.User, name, email string) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter repository.UserFilter, page repository.Page) ([]model.User, int64, error)
}

type userService struct {
	repo          repository.UserRepository
	breachChecker auth.BreachChecker
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, breachChecker auth.BreachChecker) UserService {
	return &userService{repo: repo, breachChecker: breachChecker}
}

func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	ve := &apperrors.ValidationError{}

	taken, err := s.repo.EmailTaken(ctx, in.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		ve.Add("email", validation.MsgEmailTaken)
	}

	if !in.SkipBreachCheck {
		breached, err := s.breachChecker.IsBreached(ctx, in.Password)
		if err != nil {
			return nil, fmt.Errorf("check breached passwords: %w", err)
		}
		if breached {
			ve.Add("password", validation.MsgPasswordBreached)
		}
	}

	if !ve.Empty() {
		return nil, ve
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update changes the mutable fields, enforcing email uniqueness excluding
// the record itself.
func (s *userService) Update(ctx context.Context, user *model.User, name, email string) (*model.User, error) {
	taken, err := s.repo.EmailTaken(ctx, email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return nil, apperrors.NewValidationError("email", validation.MsgEmailTaken)
	}

	user.Name = name
	user.Email = email
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter, page repository.Page) ([]model.User, int64, error) {
	return s.repo.List(ctx, filter, page)
}
