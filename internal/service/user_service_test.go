package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "scribe/internal/errors"
	"scribe/internal/model"
	"scribe/internal/validation"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name           string
		input          CreateUserInput
		setupMock      func(*MockUserRepository, *MockBreachChecker)
		wantFieldError string
		wantMessage    string
	}{
		{
			name:  "successful creation hashes the password",
			input: CreateUserInput{Name: "A", Email: "a@x.com", Password: "longenough1"},
			setupMock: func(mRepo *MockUserRepository, mBreach *MockBreachChecker) {
				mRepo.On("EmailTaken", mock.Anything, "a@x.com", uint(0)).Return(false, nil)
				mBreach.On("IsBreached", mock.Anything, "longenough1").Return(false, nil)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "duplicate email is keyed under email",
			input: CreateUserInput{Name: "A", Email: "taken@x.com", Password: "longenough1"},
			setupMock: func(mRepo *MockUserRepository, mBreach *MockBreachChecker) {
				mRepo.On("EmailTaken", mock.Anything, "taken@x.com", uint(0)).Return(true, nil)
				mBreach.On("IsBreached", mock.Anything, "longenough1").Return(false, nil)
			},
			wantFieldError: "email",
			wantMessage:    validation.MsgEmailTaken,
		},
		{
			name:  "breached password is keyed under password",
			input: CreateUserInput{Name: "A", Email: "a@x.com", Password: "password1"},
			setupMock: func(mRepo *MockUserRepository, mBreach *MockBreachChecker) {
				mRepo.On("EmailTaken", mock.Anything, "a@x.com", uint(0)).Return(false, nil)
				mBreach.On("IsBreached", mock.Anything, "password1").Return(true, nil)
			},
			wantFieldError: "password",
			wantMessage:    validation.MsgPasswordBreached,
		},
		{
			name:  "precognitive dry-run skips the breach corpus",
			input: CreateUserInput{Name: "A", Email: "a@x.com", Password: "password1", SkipBreachCheck: true},
			setupMock: func(mRepo *MockUserRepository, mBreach *MockBreachChecker) {
				mRepo.On("EmailTaken", mock.Anything, "a@x.com", uint(0)).Return(false, nil)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockBreach := new(MockBreachChecker)
			tt.setupMock(mockRepo, mockBreach)

			svc := NewUserService(mockRepo, mockBreach)
			user, err := svc.Create(context.Background(), tt.input)

			if tt.wantFieldError != "" {
				assert.Nil(t, user)
				var ve *apperrors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Equal(t, []string{tt.wantMessage}, ve.Fields[tt.wantFieldError])
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
			}

			mockRepo.AssertExpectations(t)
			mockBreach.AssertExpectations(t)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	t.Run("keeping own email is not a uniqueness conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		user := &model.User{ID: 7, Name: "Old", Email: "same@x.com"}
		mockRepo.On("EmailTaken", mock.Anything, "same@x.com", uint(7)).Return(false, nil)
		mockRepo.On("Update", mock.Anything, user).Return(nil)

		svc := NewUserService(mockRepo, new(MockBreachChecker))
		updated, err := svc.Update(context.Background(), user, "New", "same@x.com")

		assert.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("another user's email is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		user := &model.User{ID: 7, Name: "Old", Email: "same@x.com"}
		mockRepo.On("EmailTaken", mock.Anything, "other@x.com", uint(7)).Return(true, nil)

		svc := NewUserService(mockRepo, new(MockBreachChecker))
		_, err := svc.Update(context.Background(), user, "New", "other@x.com")

		var ve *apperrors.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "email")
		mockRepo.AssertExpectations(t)
	})
}

func TestUserService_Get(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(999999)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, new(MockBreachChecker))
	_, err := svc.Get(context.Background(), 999999)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}
